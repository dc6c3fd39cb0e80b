package project

import (
	"slices"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/nodeid"
)

// Class is a named, ordered sequence of nodes describing one memory layout.
//
// A class is identified by its ID, not by its pointer: two classes with the
// same ID are the same class as far as a [Project] is concerned. Class also
// implements [Node] so that classes and loose nodes can be passed together to
// functions that accept a node list.
//
// The zero value is not usable; create classes with [NewClass] or
// [NewClassWithID]. Class is not safe for concurrent modification.
type Class struct {
	NodeHeader

	// AddressFormula is a user-authored expression locating an instance of
	// the class in memory. It is stored and saved verbatim.
	AddressFormula string

	id    nodeid.ID
	nodes []Node
}

// NewClass creates an empty class with a fresh random ID.
func NewClass(name string) *Class {
	return NewClassWithID(nodeid.New(), name)
}

// NewClassWithID creates an empty class with the given ID.
func NewClassWithID(id nodeid.ID, name string) *Class {
	return &Class{
		NodeHeader: NodeHeader{Name: name},
		id:         id,
	}
}

// ID returns the class identifier.
func (c *Class) ID() nodeid.ID { return c.id }

// Nodes returns the class's nodes in order. The returned slice is a copy;
// the nodes themselves are shared.
func (c *Class) Nodes() []Node { return slices.Clone(c.nodes) }

// NodeCount returns the number of nodes in the class.
func (c *Class) NodeCount() int { return len(c.nodes) }

// AddNode appends n to the class. It does not change any offsets; call
// [Class.UpdateOffsets] to lay the nodes out back to back.
//
// Returns ErrNilNode if n is nil and ErrClassAsNode if n is a *Class.
func (c *Class) AddNode(n Node) error {
	return c.InsertNode(len(c.nodes), n)
}

// InsertNode inserts n before position i (0 <= i <= NodeCount).
func (c *Class) InsertNode(i int, n Node) error {
	if IsNil(n) {
		return errs.Wrap(errs.ErrCodeInvalidNode, ErrNilNode, "class %q", c.Name)
	}
	if inner, ok := n.(*Class); ok {
		return errs.Wrap(errs.ErrCodeInvalidNode, ErrClassAsNode, "class %q in class %q", inner.Name, c.Name)
	}
	if i < 0 || i > len(c.nodes) {
		return errs.New(errs.ErrCodeInvalidInput, "insert index %d out of range [0, %d]", i, len(c.nodes))
	}
	c.nodes = slices.Insert(c.nodes, i, n)
	return nil
}

// RemoveNode removes the first occurrence of n and reports whether it was
// present.
func (c *Class) RemoveNode(n Node) bool {
	i := slices.Index(c.nodes, n)
	if i < 0 {
		return false
	}
	c.nodes = slices.Delete(c.nodes, i, i+1)
	return true
}

// UpdateOffsets assigns each node the offset directly after its predecessor,
// starting at 0.
func (c *Class) UpdateOffsets() {
	offset := 0
	for _, n := range c.nodes {
		n.Header().Offset = offset
		offset += c.nodeSize(n, map[*Class]bool{c: true})
	}
}

// MemorySize returns the total size of the class's nodes in bytes.
// A class that embeds itself, directly or indirectly, counts each
// repetition as empty.
func (c *Class) MemorySize() int {
	return c.memorySize(map[*Class]bool{})
}

// References returns the distinct classes referenced by the class's
// reference nodes, in order of first appearance.
func (c *Class) References() []*Class {
	var out []*Class
	for _, n := range c.nodes {
		ref, ok := n.(ReferenceNode)
		if !ok {
			continue
		}
		if inner := ref.InnerClass(); inner != nil && !slices.Contains(out, inner) {
			out = append(out, inner)
		}
	}
	return out
}

func (c *Class) memorySize(seen map[*Class]bool) int {
	if seen[c] {
		return 0
	}
	seen[c] = true
	defer delete(seen, c)

	size := 0
	for _, n := range c.nodes {
		size += c.nodeSize(n, seen)
	}
	return size
}

// nodeSize threads seen through embedded classes so self-embedding
// terminates.
func (c *Class) nodeSize(n Node, seen map[*Class]bool) int {
	switch n := n.(type) {
	case *ClassInstanceNode:
		if n.Inner == nil {
			return 0
		}
		return n.Inner.memorySize(seen)
	case *ClassInstanceArrayNode:
		if n.Inner == nil {
			return 0
		}
		return n.ElementCount() * n.Inner.memorySize(seen)
	default:
		return n.MemorySize()
	}
}
