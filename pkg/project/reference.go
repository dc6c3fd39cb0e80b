package project

// ClassInstanceNode embeds an instance of Inner inline.
type ClassInstanceNode struct {
	NodeHeader
	Inner *Class
}

// InnerClass returns the embedded class.
func (n *ClassInstanceNode) InnerClass() *Class { return n.Inner }

// MemorySize returns the size of the embedded class.
func (n *ClassInstanceNode) MemorySize() int { return classSize(n.Inner) }

// ClassPointerNode points to an instance of Inner.
type ClassPointerNode struct {
	NodeHeader
	Inner *Class
}

// InnerClass returns the pointed-to class.
func (n *ClassPointerNode) InnerClass() *Class { return n.Inner }

// MemorySize returns the size of a pointer.
func (*ClassPointerNode) MemorySize() int { return PointerSize }

// ClassInstanceArrayNode embeds Count consecutive instances of Inner.
type ClassInstanceArrayNode struct {
	NodeHeader
	Inner *Class
	Count int
}

// InnerClass returns the element class.
func (n *ClassInstanceArrayNode) InnerClass() *Class { return n.Inner }

// ElementCount returns Count, clamped at zero.
func (n *ClassInstanceArrayNode) ElementCount() int { return max(n.Count, 0) }

// MemorySize returns the size of all elements.
func (n *ClassInstanceArrayNode) MemorySize() int { return n.ElementCount() * classSize(n.Inner) }

// ClassPointerArrayNode holds Count consecutive pointers to instances of Inner.
type ClassPointerArrayNode struct {
	NodeHeader
	Inner *Class
	Count int
}

// InnerClass returns the pointed-to class.
func (n *ClassPointerArrayNode) InnerClass() *Class { return n.Inner }

// ElementCount returns Count, clamped at zero.
func (n *ClassPointerArrayNode) ElementCount() int { return max(n.Count, 0) }

// MemorySize returns the size of all pointers.
func (n *ClassPointerArrayNode) MemorySize() int { return n.ElementCount() * PointerSize }

// classSize guards against a missing inner class. A class that embeds itself
// has no finite size; that case is cut at the first repetition.
func classSize(c *Class) int {
	if c == nil {
		return 0
	}
	return c.memorySize(map[*Class]bool{})
}

var (
	_ ReferenceNode = (*ClassInstanceNode)(nil)
	_ ReferenceNode = (*ClassPointerNode)(nil)
	_ ReferenceNode = (*ClassInstanceArrayNode)(nil)
	_ ReferenceNode = (*ClassPointerArrayNode)(nil)
	_ ArrayNode     = (*ClassInstanceArrayNode)(nil)
	_ ArrayNode     = (*ClassPointerArrayNode)(nil)
)
