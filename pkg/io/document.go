package io

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/reclass/pkg/buildinfo"
	"github.com/matzehuels/reclass/pkg/nodeid"
	"github.com/matzehuels/reclass/pkg/nodetype"
	"github.com/matzehuels/reclass/pkg/observability"
	"github.com/matzehuels/reclass/pkg/project"
)

// FormatVersion is the version marker written to the root element.
const FormatVersion = "1"

// DataFileName is the name of the document entry inside the archive.
const DataFileName = "Data.xml"

const (
	elemRoot       = "reclass"
	elemClasses    = "classes"
	elemClass      = "class"
	elemNode       = "node"
	elemMethod     = "method"
	elemCustomData = "custom_data"

	attrVersion   = "version"
	attrPlatform  = "platform"
	attrUUID      = "uuid"
	attrName      = "name"
	attrComment   = "comment"
	attrAddress   = "address"
	attrType      = "type"
	attrReference = "reference"
	attrCount     = "count"
	attrLength    = "length"
	attrBits      = "bits"
	attrSignature = "signature"
)

type documentBuilder struct {
	logger     Logger
	converters ConverterRegistry
	platform   string
	skipped    int
}

func newDocumentBuilder(opts Options) *documentBuilder {
	return &documentBuilder{
		logger:     opts.Logger,
		converters: opts.Converters,
		platform:   opts.Platform,
	}
}

func (b *documentBuilder) build(p *project.Project) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateComment(fmt.Sprintf("%s %s by %s", buildinfo.ApplicationName, buildinfo.Version, buildinfo.Author))
	doc.CreateComment("Website: " + buildinfo.HomepageURL)

	root := doc.CreateElement(elemRoot)
	root.CreateAttr(attrVersion, FormatVersion)
	root.CreateAttr(attrPlatform, b.platform)

	classes := root.CreateElement(elemClasses)
	for _, c := range p.Classes() {
		classes.AddChild(b.classElement(c))
	}

	custom := root.CreateElement(elemCustomData)
	data := p.CustomData()
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		custom.CreateElement(key).SetText(value)
	}

	doc.Indent(2)
	return doc
}

func (b *documentBuilder) classElement(c *project.Class) *etree.Element {
	el := etree.NewElement(elemClass)
	el.CreateAttr(attrUUID, c.ID().Base64())
	el.CreateAttr(attrName, c.Name)
	el.CreateAttr(attrComment, c.Comment)
	el.CreateAttr(attrAddress, c.AddressFormula)

	for _, n := range c.Nodes() {
		if child := b.nodeElement(c, n); child != nil {
			el.AddChild(child)
		}
	}
	return el
}

// nodeElement returns nil for nodes that are skipped.
func (b *documentBuilder) nodeElement(owner *project.Class, n project.Node) *etree.Element {
	if b.converters != nil {
		if conv, ok := b.converters.WriteConverter(n); ok {
			if el := conv.CreateElementFromNode(n, b.logger); el != nil {
				return el
			}
			b.skip(owner, n)
			return nil
		}
	}

	tag, ok := nodetype.Tag(n)
	if !ok {
		b.skip(owner, n)
		return nil
	}

	h := n.Header()
	el := etree.NewElement(elemNode)
	el.CreateAttr(attrName, h.Name)
	el.CreateAttr(attrComment, h.Comment)
	el.CreateAttr(attrType, tag)

	if ref, ok := n.(project.ReferenceNode); ok {
		el.CreateAttr(attrReference, ref.InnerClass().ID().Base64())
	}

	switch n := n.(type) {
	case *project.VirtualMethodTableNode:
		for _, m := range n.Methods {
			method := el.CreateElement(elemMethod)
			method.CreateAttr(attrName, m.Name)
			method.CreateAttr(attrComment, m.Comment)
		}
	case project.ArrayNode:
		el.CreateAttr(attrCount, strconv.Itoa(n.ElementCount()))
	case project.TextNode:
		el.CreateAttr(attrLength, strconv.Itoa(n.Length()))
	case *project.BitFieldNode:
		el.CreateAttr(attrBits, strconv.Itoa(n.Bits))
	case *project.FunctionNode:
		belongsTo := nodeid.Zero
		if n.BelongsTo != nil {
			belongsTo = n.BelongsTo.ID()
		}
		el.CreateAttr(attrReference, belongsTo.Base64())
		el.CreateAttr(attrSignature, n.Signature)
	}

	return el
}

func (b *documentBuilder) skip(owner *project.Class, n project.Node) {
	b.skipped++
	kind := nodetype.KindName(n)
	b.logger.Log(log.ErrorLevel, "Skipping node with unknown type: "+n.Header().Name)
	b.logger.Log(log.WarnLevel, kind)
	observability.Save().OnNodeSkipped(owner.Name, n.Header().Name, kind)
}
