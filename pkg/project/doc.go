// Package project provides the class/node graph that models the memory
// layout of a target process.
//
// # Overview
//
// A [Class] is a named, ordered sequence of [Node] values. Each node is one
// field of the class: an integer, a float, a text buffer, a bit field, a
// vtable listing, a function, or a reference to another class. A [Project]
// owns a set of classes plus free-form [CustomData].
//
//	player := project.NewClass("Player")
//	vec := project.NewClass("Vec3")
//	_ = player.AddNode(&project.Int32Node{NodeHeader: project.NodeHeader{Name: "health"}})
//	_ = player.AddNode(&project.ClassInstanceNode{NodeHeader: project.NodeHeader{Name: "pos"}, Inner: vec})
//	player.UpdateOffsets()
//
//	p := project.New()
//	_ = p.AddClass(player)
//	_ = p.AddClass(vec)
//
// # Node Kinds
//
// Built-in node kinds are the concrete pointer types of this package. They
// group into capability interfaces used by serializers:
//
//   - [ReferenceNode]: ClassInstanceNode, ClassPointerNode,
//     ClassInstanceArrayNode, ClassPointerArrayNode
//   - [ArrayNode]: ClassInstanceArrayNode, ClassPointerArrayNode
//   - [TextNode]: Utf8TextNode, Utf16TextNode, Utf32TextNode
//
// [BitFieldNode], [VirtualMethodTableNode] and [FunctionNode] carry their own
// extra attributes. Any other type implementing [Node] is a custom node.
//
// # References and Cycles
//
// Reference nodes are non-owning edges: the class graph is not a tree and may
// contain cycles, including a class that points to itself. Classes are
// identified by [nodeid.ID]; a [Project] stores each ID at most once, and
// [Project.ContainsClass] is the membership test graph walks rely on to stop
// at classes they have already seen.
//
// # Concurrency
//
// Classes and projects are not safe for concurrent modification. Concurrent
// reads are safe as long as nothing modifies the graph.
//
// [nodeid.ID]: github.com/matzehuels/reclass/pkg/nodeid.ID
package project
