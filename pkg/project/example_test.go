package project_test

import (
	"fmt"

	"github.com/matzehuels/reclass/pkg/project"
)

func ExampleClass_UpdateOffsets() {
	vec := project.NewClass("Vec3")
	for _, axis := range []string{"x", "y", "z"} {
		_ = vec.AddNode(&project.FloatNode{NodeHeader: project.NodeHeader{Name: axis}})
	}

	entity := project.NewClass("Entity")
	_ = entity.AddNode(&project.Int32Node{NodeHeader: project.NodeHeader{Name: "id"}})
	_ = entity.AddNode(&project.ClassInstanceNode{NodeHeader: project.NodeHeader{Name: "origin"}, Inner: vec})
	_ = entity.AddNode(&project.Utf8TextNode{NodeHeader: project.NodeHeader{Name: "tag"}, Len: 8})
	entity.UpdateOffsets()

	for _, n := range entity.Nodes() {
		fmt.Printf("%s @ %d\n", n.Header().Name, n.Header().Offset)
	}
	fmt.Println("size:", entity.MemorySize())
	// Output:
	// id @ 0
	// origin @ 4
	// tag @ 16
	// size: 24
}

func ExampleProject_RemoveClass() {
	p := project.New()
	node := project.NewClass("ListNode")
	owner := project.NewClass("List")
	_ = node.AddNode(&project.ClassPointerNode{NodeHeader: project.NodeHeader{Name: "next"}, Inner: node})
	_ = owner.AddNode(&project.ClassPointerNode{NodeHeader: project.NodeHeader{Name: "head"}, Inner: node})
	_ = p.AddClass(node)
	_ = p.AddClass(owner)

	fmt.Println(p.RemoveClass(node) != nil)
	fmt.Println(p.RemoveClass(owner) == nil, p.RemoveClass(node) == nil)
	// Output:
	// true
	// true true
}
