package project

import "github.com/matzehuels/reclass/pkg/memory"

// Utf8TextNode is an inline buffer of 8-bit text.
type Utf8TextNode struct {
	NodeHeader
	Len int // declared length in bytes
}

// Utf16TextNode is an inline buffer of UTF-16 text.
type Utf16TextNode struct {
	NodeHeader
	Len int // declared length in bytes
}

// Utf32TextNode is an inline buffer of UTF-32 text.
type Utf32TextNode struct {
	NodeHeader
	Len int // declared length in bytes
}

func (n *Utf8TextNode) Length() int  { return max(n.Len, 0) }
func (n *Utf16TextNode) Length() int { return max(n.Len, 0) }
func (n *Utf32TextNode) Length() int { return max(n.Len, 0) }

func (*Utf8TextNode) CharacterSize() int  { return 1 }
func (*Utf16TextNode) CharacterSize() int { return 2 }
func (*Utf32TextNode) CharacterSize() int { return 4 }

func (n *Utf8TextNode) MemorySize() int  { return n.Length() }
func (n *Utf16TextNode) MemorySize() int { return n.Length() }
func (n *Utf32TextNode) MemorySize() int { return n.Length() }

// ReadValueFromMemory decodes the node's bytes from m at the node's offset.
func (n *Utf8TextNode) ReadValueFromMemory(m *memory.Buffer) string {
	return m.ReadUTF8String(n.Offset, n.MemorySize())
}

// ReadValueFromMemory decodes the node's bytes from m at the node's offset
// as 2-byte code units.
func (n *Utf16TextNode) ReadValueFromMemory(m *memory.Buffer) string {
	return m.ReadUTF16String(n.Offset, n.MemorySize())
}

// ReadValueFromMemory decodes the node's bytes from m at the node's offset
// as 4-byte code units.
func (n *Utf32TextNode) ReadValueFromMemory(m *memory.Buffer) string {
	return m.ReadUTF32String(n.Offset, n.MemorySize())
}

// DisplayLength returns the number of characters shown for a text node,
// derived from its memory size. It is used for display only and is not
// saved.
func DisplayLength(n TextNode) int {
	return n.MemorySize() / n.CharacterSize()
}

var (
	_ TextNode = (*Utf8TextNode)(nil)
	_ TextNode = (*Utf16TextNode)(nil)
	_ TextNode = (*Utf32TextNode)(nil)
)
