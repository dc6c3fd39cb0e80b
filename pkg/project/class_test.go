package project

import (
	"errors"
	"testing"

	errs "github.com/matzehuels/reclass/pkg/errors"
)

func hdr(name string) NodeHeader { return NodeHeader{Name: name} }

func TestClassAddNode(t *testing.T) {
	c := NewClass("Player")

	a := &Int32Node{NodeHeader: hdr("a")}
	b := &FloatNode{NodeHeader: hdr("b")}
	if err := c.AddNode(a); err != nil {
		t.Fatalf("AddNode(a): %v", err)
	}
	if err := c.AddNode(b); err != nil {
		t.Fatalf("AddNode(b): %v", err)
	}
	if err := c.InsertNode(0, &BoolNode{NodeHeader: hdr("flag")}); err != nil {
		t.Fatalf("InsertNode: %v", err)
	}

	nodes := c.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("NodeCount = %d, want 3", len(nodes))
	}
	want := []string{"flag", "a", "b"}
	for i, n := range nodes {
		if n.Header().Name != want[i] {
			t.Errorf("node %d = %q, want %q", i, n.Header().Name, want[i])
		}
	}

	// AddNode never lays out
	if a.Offset != 0 || b.Offset != 0 {
		t.Errorf("AddNode changed offsets: a=%d b=%d", a.Offset, b.Offset)
	}
}

func TestClassAddNodeErrors(t *testing.T) {
	c := NewClass("C")

	var nilNode *Int32Node
	tests := []struct {
		name string
		node Node
		want error
		code errs.Code
	}{
		{"nil interface", nil, ErrNilNode, errs.ErrCodeInvalidNode},
		{"typed nil", nilNode, ErrNilNode, errs.ErrCodeInvalidNode},
		{"self", c, ErrClassAsNode, errs.ErrCodeInvalidNode},
		{"other class", NewClass("Inner"), ErrClassAsNode, errs.ErrCodeInvalidNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.AddNode(tt.node)
			if !errors.Is(err, tt.want) {
				t.Errorf("AddNode() error = %v, want %v", err, tt.want)
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("AddNode() code = %v, want %v", errs.GetCode(err), tt.code)
			}
		})
	}

	if err := c.InsertNode(5, &Int8Node{}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("InsertNode(out of range) error = %v, want INVALID_INPUT", err)
	}
	if c.NodeCount() != 0 {
		t.Errorf("NodeCount = %d after failed adds, want 0", c.NodeCount())
	}
}

func TestClassRemoveNode(t *testing.T) {
	c := NewClass("C")
	a := &Int8Node{NodeHeader: hdr("a")}
	b := &Int8Node{NodeHeader: hdr("b")}
	_ = c.AddNode(a)
	_ = c.AddNode(b)

	if !c.RemoveNode(a) {
		t.Error("RemoveNode(a) = false, want true")
	}
	if c.RemoveNode(a) {
		t.Error("RemoveNode(a) twice = true, want false")
	}
	if nodes := c.Nodes(); len(nodes) != 1 || nodes[0] != Node(b) {
		t.Errorf("Nodes() = %v, want [b]", nodes)
	}
}

func TestClassNodesIsCopy(t *testing.T) {
	c := NewClass("C")
	_ = c.AddNode(&Int8Node{})

	nodes := c.Nodes()
	nodes[0] = nil
	if c.Nodes()[0] == nil {
		t.Error("modifying Nodes() result changed the class")
	}
}

func TestUpdateOffsets(t *testing.T) {
	vec := NewClass("Vec3")
	_ = vec.AddNode(&FloatNode{NodeHeader: hdr("x")})
	_ = vec.AddNode(&FloatNode{NodeHeader: hdr("y")})
	_ = vec.AddNode(&FloatNode{NodeHeader: hdr("z")})
	vec.UpdateOffsets()

	player := NewClass("Player")
	hp := &Int32Node{NodeHeader: hdr("hp")}
	pos := &ClassInstanceNode{NodeHeader: hdr("pos"), Inner: vec}
	name := &Utf16TextNode{NodeHeader: hdr("name"), Len: 32}
	next := &ClassPointerNode{NodeHeader: hdr("next"), Inner: player}
	flags := &BitFieldNode{NodeHeader: hdr("flags"), Bits: 16}
	for _, n := range []Node{hp, pos, name, next, flags} {
		_ = player.AddNode(n)
	}
	player.UpdateOffsets()

	tests := []struct {
		node Node
		want int
	}{
		{hp, 0},
		{pos, 4},
		{name, 16},
		{next, 48},
		{flags, 48 + PointerSize},
	}
	for _, tt := range tests {
		if got := tt.node.Header().Offset; got != tt.want {
			t.Errorf("%s offset = %d, want %d", tt.node.Header().Name, got, tt.want)
		}
	}

	if got, want := player.MemorySize(), 48+PointerSize+2; got != want {
		t.Errorf("MemorySize() = %d, want %d", got, want)
	}
}

func TestMemorySizeSelfEmbedding(t *testing.T) {
	a := NewClass("A")
	b := NewClass("B")
	_ = a.AddNode(&Int32Node{})
	_ = a.AddNode(&ClassInstanceNode{Inner: b})
	_ = b.AddNode(&Int16Node{})
	_ = b.AddNode(&ClassInstanceArrayNode{Inner: a, Count: 3})

	// a = 4 + size(b), b = 2 + 3*size(a) where nested a counts as 0
	if got := a.MemorySize(); got != 6 {
		t.Errorf("A.MemorySize() = %d, want 6", got)
	}
	if got := (&ClassInstanceNode{Inner: a}).MemorySize(); got != 6 {
		t.Errorf("ClassInstanceNode{A}.MemorySize() = %d, want 6", got)
	}
}

func TestReferences(t *testing.T) {
	a := NewClass("A")
	b := NewClass("B")
	_ = a.AddNode(&ClassPointerNode{Inner: b})
	_ = a.AddNode(&ClassInstanceNode{Inner: a})
	_ = a.AddNode(&ClassPointerArrayNode{Inner: b, Count: 2})
	_ = a.AddNode(&ClassPointerNode{})
	_ = a.AddNode(&FunctionNode{BelongsTo: b})

	refs := a.References()
	if len(refs) != 2 || refs[0] != b || refs[1] != a {
		t.Errorf("References() = %v, want [B A]", refs)
	}
}

func TestArrayCountClamp(t *testing.T) {
	n := &ClassPointerArrayNode{Count: -4}
	if n.ElementCount() != 0 {
		t.Errorf("ElementCount() = %d, want 0", n.ElementCount())
	}
	if n.MemorySize() != 0 {
		t.Errorf("MemorySize() = %d, want 0", n.MemorySize())
	}
}
