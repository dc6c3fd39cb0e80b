// Package memory provides a byte snapshot of process memory that nodes read
// their values from.
//
// A [Buffer] holds bytes copied from a target process starting at some base
// address. Reads are relative to the start of the snapshot (a node's offset
// within its class). Bytes outside the snapshot read as zero, so a node that
// extends past the captured region still yields a value instead of failing.
package memory

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	utf8Encoding  encoding.Encoding = xunicode.UTF8
	utf16Encoding encoding.Encoding = xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)
	utf32Encoding encoding.Encoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// Buffer is an immutable snapshot of memory starting at Base.
// It is safe for concurrent reads.
type Buffer struct {
	base uint64
	data []byte
}

// NewBuffer wraps data, which was read from address base.
// The slice is retained, not copied.
func NewBuffer(base uint64, data []byte) *Buffer {
	return &Buffer{base: base, data: data}
}

// Base returns the address the snapshot was taken from.
func (b *Buffer) Base() uint64 { return b.base }

// Size returns the number of captured bytes.
func (b *Buffer) Size() int { return len(b.data) }

// ReadBytes returns length bytes starting at offset. Bytes outside the
// snapshot are zero. A non-positive length yields an empty slice.
func (b *Buffer) ReadBytes(offset, length int) []byte {
	if length <= 0 {
		return []byte{}
	}
	out := make([]byte, length)
	if offset >= len(b.data) || offset+length <= 0 {
		return out
	}
	src, dst := offset, 0
	if src < 0 {
		dst = -src
		src = 0
	}
	copy(out[dst:], b.data[src:])
	return out
}

// ReadUTF8String decodes length bytes at offset as UTF-8 text.
func (b *Buffer) ReadUTF8String(offset, length int) string {
	return b.readString(utf8Encoding, 1, offset, length)
}

// ReadUTF16String decodes length bytes at offset as little-endian UTF-16
// code units.
func (b *Buffer) ReadUTF16String(offset, length int) string {
	return b.readString(utf16Encoding, 2, offset, length)
}

// ReadUTF32String decodes length bytes at offset as little-endian UTF-32
// code units.
func (b *Buffer) ReadUTF32String(offset, length int) string {
	return b.readString(utf32Encoding, 4, offset, length)
}

// readString decodes the bytes, stops at the first NUL character and replaces
// non-printable characters with '.'. A trailing partial code unit is dropped.
func (b *Buffer) readString(enc encoding.Encoding, unit, offset, length int) string {
	length -= length % unit
	raw := b.ReadBytes(offset, length)
	if len(raw) == 0 {
		return ""
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, r := range string(decoded) {
		if r == 0 {
			break
		}
		if !unicode.IsPrint(r) {
			r = '.'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
