package io

import (
	"fmt"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/project"
)

// validateProject rejects graphs the writer cannot describe faithfully.
// It runs before any output is produced.
func validateProject(p *project.Project) error {
	if p == nil {
		return errs.New(errs.ErrCodeInvalidInput, "project must not be nil")
	}
	for _, c := range p.Classes() {
		if c == nil {
			return errs.New(errs.ErrCodeInvalidInput, "project contains a nil class")
		}
		if err := validateText(fmt.Sprintf("class %q", c.Name), classText(c)); err != nil {
			return err
		}
		for i, n := range c.Nodes() {
			if err := validateNode(n); err != nil {
				return errs.Wrap(errs.GetCode(err), err, "class %q node %d", c.Name, i)
			}
			ref, ok := n.(project.ReferenceNode)
			if !ok {
				continue
			}
			if !p.ContainsClass(ref.InnerClass().ID()) {
				return errs.New(errs.ErrCodeDanglingReference,
					"class %q node %q references class %q (%s) which is not part of the project",
					c.Name, n.Header().Name, ref.InnerClass().Name, ref.InnerClass().ID())
			}
		}
	}

	data := p.CustomData()
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		if err := errs.ValidateXMLText(fmt.Sprintf("custom data %q", key), value); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n project.Node) error {
	if project.IsNil(n) {
		return errs.Wrap(errs.ErrCodeInvalidNode, project.ErrNilNode, "validate")
	}
	if n.Header() == nil {
		return errs.New(errs.ErrCodeInvalidNode, "node of type %T has no header", n)
	}
	if ref, ok := n.(project.ReferenceNode); ok && ref.InnerClass() == nil {
		return errs.New(errs.ErrCodeInvalidInput, "reference node %q has no target class", n.Header().Name)
	}
	return validateText(fmt.Sprintf("node %q", n.Header().Name), nodeText(n))
}

// textField is a string written to the document as an attribute value or
// element text.
type textField struct {
	name, value string
}

func classText(c *project.Class) []textField {
	return []textField{
		{"name", c.Name},
		{"comment", c.Comment},
		{"address", c.AddressFormula},
	}
}

func nodeText(n project.Node) []textField {
	if c, ok := n.(*project.Class); ok {
		return classText(c)
	}

	h := n.Header()
	fields := []textField{{"name", h.Name}, {"comment", h.Comment}}
	switch n := n.(type) {
	case *project.VirtualMethodTableNode:
		for i, m := range n.Methods {
			fields = append(fields,
				textField{fmt.Sprintf("method %d name", i), m.Name},
				textField{fmt.Sprintf("method %d comment", i), m.Comment})
		}
	case *project.FunctionNode:
		fields = append(fields, textField{"signature", n.Signature})
	}
	return fields
}

// validateText rejects strings that would not survive the XML writer
// unchanged.
func validateText(owner string, fields []textField) error {
	for _, f := range fields {
		if err := errs.ValidateXMLText(owner+" "+f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
