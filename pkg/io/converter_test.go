package io

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/project"
)

type pluginNode struct {
	project.NodeHeader
	Payload string
}

func (*pluginNode) MemorySize() int { return 8 }

func pluginConverter(n project.Node, logger Logger) *etree.Element {
	p := n.(*pluginNode)
	el := etree.NewElement("node")
	el.CreateAttr("name", p.Name)
	el.CreateAttr("type", "PluginNode")
	el.CreateAttr("payload", p.Payload)
	return el
}

func TestConvertersRegister(t *testing.T) {
	c := NewConverters()
	if err := c.Register(&pluginNode{}, ConverterFunc(pluginConverter)); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, ok := c.WriteConverter(&pluginNode{}); !ok {
		t.Error("WriteConverter(pluginNode) = false, want true")
	}
	if _, ok := c.WriteConverter(&project.Int32Node{}); ok {
		t.Error("WriteConverter(Int32Node) = true, want false")
	}

	var nilRegistry *Converters
	if _, ok := nilRegistry.WriteConverter(&pluginNode{}); ok {
		t.Error("nil registry should resolve nothing")
	}
}

func TestConvertersRegisterInvalid(t *testing.T) {
	c := NewConverters()
	var nilNode *pluginNode
	if err := c.Register(nilNode, ConverterFunc(pluginConverter)); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Register(nil sample) error = %v, want INVALID_INPUT", err)
	}
	if err := c.Register(&pluginNode{}, nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Register(nil converter) error = %v, want INVALID_INPUT", err)
	}
}

func TestWriteProjectUsesConverterOutputVerbatim(t *testing.T) {
	converters := NewConverters()
	_ = converters.Register(&pluginNode{}, ConverterFunc(pluginConverter))

	c := project.NewClass("Host")
	_ = c.AddNode(&pluginNode{NodeHeader: header("plugged"), Payload: "42"})
	p := project.New()
	_ = p.AddClass(c)

	logger := &recordLogger{}
	class := classElements(writeProject(t, p, Options{Logger: logger, Converters: converters}))[0]

	el := findNode(t, class, "plugged")
	if got := el.SelectAttrValue("type", ""); got != "PluginNode" {
		t.Errorf("type = %q, want PluginNode", got)
	}
	if got := el.SelectAttrValue("payload", ""); got != "42" {
		t.Errorf("payload = %q, want 42", got)
	}
	if el.SelectAttr("comment") != nil {
		t.Error("converter output should not gain built-in attributes")
	}
	if len(logger.entries) != 0 {
		t.Errorf("got %d log entries, want 0", len(logger.entries))
	}
}

func TestWriteProjectConverterTakesPrecedence(t *testing.T) {
	converters := NewConverters()
	_ = converters.Register(&project.Int32Node{}, ConverterFunc(func(n project.Node, _ Logger) *etree.Element {
		el := etree.NewElement("node")
		el.CreateAttr("name", n.Header().Name)
		el.CreateAttr("type", "OverriddenInt")
		return el
	}))

	c := project.NewClass("Host")
	_ = c.AddNode(&project.Int32Node{NodeHeader: header("value")})
	p := project.New()
	_ = p.AddClass(c)

	class := classElements(writeProject(t, p, Options{Logger: &recordLogger{}, Converters: converters}))[0]
	if got := findNode(t, class, "value").SelectAttrValue("type", ""); got != "OverriddenInt" {
		t.Errorf("type = %q, want OverriddenInt", got)
	}
}

func TestWriteProjectNilConverterResultIsSkipped(t *testing.T) {
	converters := NewConverters()
	_ = converters.Register(&pluginNode{}, ConverterFunc(func(project.Node, Logger) *etree.Element { return nil }))

	c := project.NewClass("Host")
	_ = c.AddNode(&pluginNode{NodeHeader: header("broken")})
	_ = c.AddNode(&project.BoolNode{NodeHeader: header("ok")})
	p := project.New()
	_ = p.AddClass(c)

	logger := &recordLogger{}
	class := classElements(writeProject(t, p, Options{Logger: logger, Converters: converters}))[0]

	if got := len(class.SelectElements("node")); got != 1 {
		t.Errorf("got %d nodes, want 1", got)
	}
	if len(logger.entries) != 2 || logger.entries[0].level != log.ErrorLevel {
		t.Errorf("log entries = %v, want error and warning", logger.entries)
	}
}
