package io

import (
	"reflect"

	"github.com/beevik/etree"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/project"
)

// Converter writes one node kind that the built-in type table does not know.
//
// CreateElementFromNode returns the complete node element. A nil result is
// treated like an unknown node and skipped.
type Converter interface {
	CreateElementFromNode(n project.Node, logger Logger) *etree.Element
}

// ConverterFunc adapts a function to [Converter].
type ConverterFunc func(n project.Node, logger Logger) *etree.Element

// CreateElementFromNode calls f.
func (f ConverterFunc) CreateElementFromNode(n project.Node, logger Logger) *etree.Element {
	return f(n, logger)
}

// ConverterRegistry looks up the converter responsible for a node.
type ConverterRegistry interface {
	WriteConverter(n project.Node) (Converter, bool)
}

// Converters is a [ConverterRegistry] keyed by the node's concrete type.
type Converters struct {
	byType map[reflect.Type]Converter
}

// NewConverters returns an empty registry.
func NewConverters() *Converters {
	return &Converters{byType: make(map[reflect.Type]Converter)}
}

// Register makes conv responsible for every node with the same concrete type
// as sample. A later registration for the same type replaces the earlier one.
func (c *Converters) Register(sample project.Node, conv Converter) error {
	if project.IsNil(sample) {
		return errs.New(errs.ErrCodeInvalidInput, "converter sample node must not be nil")
	}
	if conv == nil {
		return errs.New(errs.ErrCodeInvalidInput, "converter for %T must not be nil", sample)
	}
	c.byType[reflect.TypeOf(sample)] = conv
	return nil
}

// WriteConverter returns the converter registered for n's type.
func (c *Converters) WriteConverter(n project.Node) (Converter, bool) {
	if c == nil || n == nil {
		return nil, false
	}
	conv, ok := c.byType[reflect.TypeOf(n)]
	return conv, ok
}

// Len returns the number of registered converters.
func (c *Converters) Len() int { return len(c.byType) }
