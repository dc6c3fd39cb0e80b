package project

import "strconv"

// PointerSize is the size in bytes of a pointer on the platform the binary
// was built for. Pointer-like nodes occupy this many bytes.
const PointerSize = strconv.IntSize / 8

// Node is a single field inside a class.
//
// The built-in node kinds are the concrete pointer types declared in this
// package. Other packages may define their own node kinds by implementing
// Node; such nodes are serialized only when a converter is registered for
// them.
type Node interface {
	// Header returns the mutable name, comment and offset shared by all nodes.
	Header() *NodeHeader
	// MemorySize returns the number of bytes the node occupies in its class.
	MemorySize() int
}

// NodeHeader holds the attributes common to every node. Embed it to
// implement [Node.Header].
type NodeHeader struct {
	Name    string
	Comment string
	Offset  int // byte offset within the owning class
}

// Header returns h itself.
func (h *NodeHeader) Header() *NodeHeader { return h }

// ReferenceNode is a node holding a non-owning link to another class.
// Several reference nodes may point at the same class, and a class may
// reference itself directly or through a chain of other classes.
type ReferenceNode interface {
	Node
	// InnerClass returns the referenced class.
	InnerClass() *Class
}

// ArrayNode is a node that repeats an element a fixed number of times.
type ArrayNode interface {
	Node
	// ElementCount returns the number of elements (never negative).
	ElementCount() int
}

// TextNode is a fixed-length inline text buffer.
type TextNode interface {
	Node
	// Length returns the declared length in bytes.
	Length() int
	// CharacterSize returns the size of one code unit in bytes.
	CharacterSize() int
}
