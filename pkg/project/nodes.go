package project

// Fixed-size value nodes. Each type only differs in its memory size and in
// the type tag it is saved under.

type (
	Hex8Node  struct{ NodeHeader }
	Hex16Node struct{ NodeHeader }
	Hex32Node struct{ NodeHeader }
	Hex64Node struct{ NodeHeader }

	Int8Node  struct{ NodeHeader }
	Int16Node struct{ NodeHeader }
	Int32Node struct{ NodeHeader }
	Int64Node struct{ NodeHeader }
	NIntNode  struct{ NodeHeader } // pointer-sized signed integer

	UInt8Node  struct{ NodeHeader }
	UInt16Node struct{ NodeHeader }
	UInt32Node struct{ NodeHeader }
	UInt64Node struct{ NodeHeader }
	NUIntNode  struct{ NodeHeader } // pointer-sized unsigned integer

	BoolNode   struct{ NodeHeader }
	FloatNode  struct{ NodeHeader }
	DoubleNode struct{ NodeHeader }

	Vector2Node   struct{ NodeHeader }
	Vector3Node   struct{ NodeHeader }
	Vector4Node   struct{ NodeHeader }
	Matrix3x3Node struct{ NodeHeader }
	Matrix3x4Node struct{ NodeHeader }
	Matrix4x4Node struct{ NodeHeader }

	PointerNode      struct{ NodeHeader } // untyped pointer
	FunctionPtrNode  struct{ NodeHeader }
	Utf8TextPtrNode  struct{ NodeHeader }
	Utf16TextPtrNode struct{ NodeHeader }
	Utf32TextPtrNode struct{ NodeHeader }
)

func (*Hex8Node) MemorySize() int  { return 1 }
func (*Hex16Node) MemorySize() int { return 2 }
func (*Hex32Node) MemorySize() int { return 4 }
func (*Hex64Node) MemorySize() int { return 8 }

func (*Int8Node) MemorySize() int  { return 1 }
func (*Int16Node) MemorySize() int { return 2 }
func (*Int32Node) MemorySize() int { return 4 }
func (*Int64Node) MemorySize() int { return 8 }
func (*NIntNode) MemorySize() int  { return PointerSize }

func (*UInt8Node) MemorySize() int  { return 1 }
func (*UInt16Node) MemorySize() int { return 2 }
func (*UInt32Node) MemorySize() int { return 4 }
func (*UInt64Node) MemorySize() int { return 8 }
func (*NUIntNode) MemorySize() int  { return PointerSize }

func (*BoolNode) MemorySize() int   { return 1 }
func (*FloatNode) MemorySize() int  { return 4 }
func (*DoubleNode) MemorySize() int { return 8 }

func (*Vector2Node) MemorySize() int   { return 2 * 4 }
func (*Vector3Node) MemorySize() int   { return 3 * 4 }
func (*Vector4Node) MemorySize() int   { return 4 * 4 }
func (*Matrix3x3Node) MemorySize() int { return 3 * 3 * 4 }
func (*Matrix3x4Node) MemorySize() int { return 3 * 4 * 4 }
func (*Matrix4x4Node) MemorySize() int { return 4 * 4 * 4 }

func (*PointerNode) MemorySize() int      { return PointerSize }
func (*FunctionPtrNode) MemorySize() int  { return PointerSize }
func (*Utf8TextPtrNode) MemorySize() int  { return PointerSize }
func (*Utf16TextPtrNode) MemorySize() int { return PointerSize }
func (*Utf32TextPtrNode) MemorySize() int { return PointerSize }

// BitFieldNode groups Bits single-bit flags. Bits is one of 8, 16, 32 or 64.
type BitFieldNode struct {
	NodeHeader
	Bits int
}

// MemorySize returns the number of bytes needed to hold Bits bits.
func (n *BitFieldNode) MemorySize() int { return (n.Bits + 7) / 8 }

// VirtualMethod is one entry of a virtual method table.
type VirtualMethod struct {
	Name    string
	Comment string
}

// VirtualMethodTableNode lists the methods of a class's vtable. In class
// memory it is the pointer to the table; the methods are a listing only.
type VirtualMethodTableNode struct {
	NodeHeader
	Methods []VirtualMethod
}

// MemorySize returns the size of the vtable pointer.
func (*VirtualMethodTableNode) MemorySize() int { return PointerSize }

// FunctionNode describes a function. BelongsTo is the class the function is
// a member of, or nil for a free-standing function.
type FunctionNode struct {
	NodeHeader
	Signature string
	BelongsTo *Class
}

// MemorySize returns 0: a function is not stored inline in class memory.
func (*FunctionNode) MemorySize() int { return 0 }
