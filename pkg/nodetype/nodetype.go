// Package nodetype maps built-in node kinds to the stable type tags they are
// saved under.
//
// The table is fixed: it covers exactly the concrete node types declared in
// package project. Node kinds defined elsewhere have no tag here; writers
// must consult their own converter registry for those before falling back to
// [Tag].
//
//	tag, ok := nodetype.Tag(&project.Int32Node{}) // "Int32Node", true
//	n, ok := nodetype.New("Utf16TextNode")        // *project.Utf16TextNode
package nodetype

import (
	"reflect"

	"github.com/matzehuels/reclass/pkg/project"
)

type builtin struct {
	tag string
	new func() project.Node
}

// builtins lists every built-in node kind in display order.
var builtins = []builtin{
	{"Hex8Node", func() project.Node { return &project.Hex8Node{} }},
	{"Hex16Node", func() project.Node { return &project.Hex16Node{} }},
	{"Hex32Node", func() project.Node { return &project.Hex32Node{} }},
	{"Hex64Node", func() project.Node { return &project.Hex64Node{} }},
	{"Int8Node", func() project.Node { return &project.Int8Node{} }},
	{"Int16Node", func() project.Node { return &project.Int16Node{} }},
	{"Int32Node", func() project.Node { return &project.Int32Node{} }},
	{"Int64Node", func() project.Node { return &project.Int64Node{} }},
	{"NIntNode", func() project.Node { return &project.NIntNode{} }},
	{"UInt8Node", func() project.Node { return &project.UInt8Node{} }},
	{"UInt16Node", func() project.Node { return &project.UInt16Node{} }},
	{"UInt32Node", func() project.Node { return &project.UInt32Node{} }},
	{"UInt64Node", func() project.Node { return &project.UInt64Node{} }},
	{"NUIntNode", func() project.Node { return &project.NUIntNode{} }},
	{"BoolNode", func() project.Node { return &project.BoolNode{} }},
	{"BitFieldNode", func() project.Node { return &project.BitFieldNode{Bits: 8} }},
	{"FloatNode", func() project.Node { return &project.FloatNode{} }},
	{"DoubleNode", func() project.Node { return &project.DoubleNode{} }},
	{"Vector2Node", func() project.Node { return &project.Vector2Node{} }},
	{"Vector3Node", func() project.Node { return &project.Vector3Node{} }},
	{"Vector4Node", func() project.Node { return &project.Vector4Node{} }},
	{"Matrix3x3Node", func() project.Node { return &project.Matrix3x3Node{} }},
	{"Matrix3x4Node", func() project.Node { return &project.Matrix3x4Node{} }},
	{"Matrix4x4Node", func() project.Node { return &project.Matrix4x4Node{} }},
	{"Utf8TextNode", func() project.Node { return &project.Utf8TextNode{} }},
	{"Utf16TextNode", func() project.Node { return &project.Utf16TextNode{} }},
	{"Utf32TextNode", func() project.Node { return &project.Utf32TextNode{} }},
	{"Utf8TextPtrNode", func() project.Node { return &project.Utf8TextPtrNode{} }},
	{"Utf16TextPtrNode", func() project.Node { return &project.Utf16TextPtrNode{} }},
	{"Utf32TextPtrNode", func() project.Node { return &project.Utf32TextPtrNode{} }},
	{"PointerNode", func() project.Node { return &project.PointerNode{} }},
	{"ClassInstanceNode", func() project.Node { return &project.ClassInstanceNode{} }},
	{"ClassPointerNode", func() project.Node { return &project.ClassPointerNode{} }},
	{"ClassInstanceArrayNode", func() project.Node { return &project.ClassInstanceArrayNode{} }},
	{"ClassPointerArrayNode", func() project.Node { return &project.ClassPointerArrayNode{} }},
	{"VirtualMethodTableNode", func() project.Node { return &project.VirtualMethodTableNode{} }},
	{"FunctionNode", func() project.Node { return &project.FunctionNode{} }},
	{"FunctionPtrNode", func() project.Node { return &project.FunctionPtrNode{} }},
}

var (
	typeToTag = make(map[reflect.Type]string, len(builtins))
	tagToNew  = make(map[string]func() project.Node, len(builtins))
)

func init() {
	for _, b := range builtins {
		typeToTag[reflect.TypeOf(b.new())] = b.tag
		tagToNew[b.tag] = b.new
	}
}

// Tag returns the type tag of a built-in node kind. It reports false for
// nil nodes and for node kinds not declared in package project, including
// *project.Class, which is never saved as a node.
func Tag(n project.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	tag, ok := typeToTag[reflect.TypeOf(n)]
	return tag, ok
}

// New returns a fresh zero-valued node for tag.
func New(tag string) (project.Node, bool) {
	f, ok := tagToNew[tag]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Tags returns every built-in type tag in display order.
func Tags() []string {
	out := make([]string, len(builtins))
	for i, b := range builtins {
		out[i] = b.tag
	}
	return out
}

// KindName returns the Go type name of n, used to diagnose nodes that have
// no tag.
func KindName(n project.Node) string {
	if n == nil {
		return "<nil>"
	}
	return reflect.TypeOf(n).String()
}
