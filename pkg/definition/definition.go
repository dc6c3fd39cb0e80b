// Package definition loads projects from TOML definition files.
//
// A definition lists classes as [[class]] tables and their nodes as
// [[class.node]] tables. Reference targets and function owners are named by
// class name; class names must therefore be unique within a file.
//
//	[custom_data]
//	game = "example"
//
//	[[class]]
//	name = "Player"
//	address = "<game.exe>+0x1000"
//
//	  [[class.node]]
//	  name = "health"
//	  type = "Int32Node"
//
//	  [[class.node]]
//	  name = "next"
//	  type = "ClassPointerNode"
//	  target = "Player"
//
// Node types are the tags listed by [nodetype.Tags]. Once loaded, every
// class has its node offsets laid out back to back.
package definition

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/nodeid"
	"github.com/matzehuels/reclass/pkg/nodetype"
	"github.com/matzehuels/reclass/pkg/project"
)

type file struct {
	CustomData map[string]string `toml:"custom_data"`
	Classes    []classDef        `toml:"class"`
}

type classDef struct {
	Name    string    `toml:"name"`
	UUID    string    `toml:"uuid"`
	Comment string    `toml:"comment"`
	Address string    `toml:"address"`
	Nodes   []nodeDef `toml:"node"`
}

type nodeDef struct {
	Name      string      `toml:"name"`
	Type      string      `toml:"type"`
	Comment   string      `toml:"comment"`
	Target    string      `toml:"target"`
	Count     *int        `toml:"count"`
	Length    *int        `toml:"length"`
	Bits      *int        `toml:"bits"`
	Signature string      `toml:"signature"`
	BelongsTo string      `toml:"belongs_to"`
	Methods   []methodDef `toml:"methods"`
}

type methodDef struct {
	Name    string `toml:"name"`
	Comment string `toml:"comment"`
}

var validBits = []int{8, 16, 32, 64}

// Load reads the definition file at path.
func Load(path string) (*project.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "%s", path)
	}
	return p, nil
}

// Read decodes a definition from r and builds the project it describes.
// Unknown keys, unknown node types and unresolved class names are errors.
func Read(r io.Reader) (*project.Project, error) {
	var def file
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDefinition, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidDefinition, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return build(def)
}

func build(def file) (*project.Project, error) {
	p := project.New()
	byName := make(map[string]*project.Class, len(def.Classes))

	for i, cd := range def.Classes {
		if cd.Name == "" {
			return nil, errs.New(errs.ErrCodeInvalidDefinition, "class %d has no name", i)
		}
		if _, dup := byName[cd.Name]; dup {
			return nil, errs.New(errs.ErrCodeInvalidDefinition, "class %q defined twice", cd.Name)
		}

		var c *project.Class
		if cd.UUID != "" {
			id, err := nodeid.Parse(cd.UUID)
			if err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidDefinition, err, "class %q", cd.Name)
			}
			c = project.NewClassWithID(id, cd.Name)
		} else {
			c = project.NewClass(cd.Name)
		}
		c.Comment = cd.Comment
		c.AddressFormula = cd.Address

		if err := p.AddClass(c); err != nil {
			return nil, err
		}
		byName[cd.Name] = c
	}

	for _, cd := range def.Classes {
		c := byName[cd.Name]
		for i, nd := range cd.Nodes {
			n, err := buildNode(nd, byName)
			if err != nil {
				return nil, errs.Wrap(errs.GetCode(err), err, "class %q node %d", cd.Name, i)
			}
			if err := c.AddNode(n); err != nil {
				return nil, err
			}
		}
		c.UpdateOffsets()
	}

	for _, key := range slices.Sorted(maps.Keys(def.CustomData)) {
		if err := p.CustomData().Set(key, def.CustomData[key]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildNode(nd nodeDef, classes map[string]*project.Class) (project.Node, error) {
	n, ok := nodetype.New(nd.Type)
	if !ok {
		return nil, errs.New(errs.ErrCodeUnknownType, "unknown node type %q", nd.Type)
	}
	h := n.Header()
	h.Name = nd.Name
	h.Comment = nd.Comment

	used := fieldSet{}
	if err := applyFields(n, nd, classes, used); err != nil {
		return nil, err
	}
	if err := used.checkUnused(nd); err != nil {
		return nil, err
	}
	return n, nil
}

// fieldSet records which optional fields a node kind consumed.
type fieldSet map[string]bool

func (u fieldSet) checkUnused(nd nodeDef) error {
	set := map[string]bool{
		"target":     nd.Target != "",
		"count":      nd.Count != nil,
		"length":     nd.Length != nil,
		"bits":       nd.Bits != nil,
		"signature":  nd.Signature != "",
		"belongs_to": nd.BelongsTo != "",
		"methods":    len(nd.Methods) > 0,
	}
	for _, field := range []string{"target", "count", "length", "bits", "signature", "belongs_to", "methods"} {
		if set[field] && !u[field] {
			return errs.New(errs.ErrCodeInvalidDefinition, "field %q does not apply to %s", field, nd.Type)
		}
	}
	return nil
}

func applyFields(n project.Node, nd nodeDef, classes map[string]*project.Class, used fieldSet) error {
	target := func() (*project.Class, error) {
		used["target"] = true
		if nd.Target == "" {
			return nil, errs.New(errs.ErrCodeInvalidDefinition, "%s %q needs a target class", nd.Type, nd.Name)
		}
		c, ok := classes[nd.Target]
		if !ok {
			return nil, errs.New(errs.ErrCodeInvalidDefinition, "unknown target class %q", nd.Target)
		}
		return c, nil
	}
	count := func() int {
		used["count"] = true
		if nd.Count == nil {
			return 1
		}
		return *nd.Count
	}
	length := func() int {
		used["length"] = true
		if nd.Length == nil {
			return 0
		}
		return *nd.Length
	}

	var err error
	switch n := n.(type) {
	case *project.ClassInstanceNode:
		n.Inner, err = target()
	case *project.ClassPointerNode:
		n.Inner, err = target()
	case *project.ClassInstanceArrayNode:
		n.Inner, err = target()
		n.Count = count()
	case *project.ClassPointerArrayNode:
		n.Inner, err = target()
		n.Count = count()
	case *project.Utf8TextNode:
		n.Len = length()
	case *project.Utf16TextNode:
		n.Len = length()
	case *project.Utf32TextNode:
		n.Len = length()
	case *project.BitFieldNode:
		used["bits"] = true
		if nd.Bits != nil {
			n.Bits = *nd.Bits
		}
		if !slices.Contains(validBits, n.Bits) {
			return errs.New(errs.ErrCodeInvalidDefinition, "bit field %q has %d bits, want one of %v", nd.Name, n.Bits, validBits)
		}
	case *project.FunctionNode:
		used["signature"] = true
		used["belongs_to"] = true
		n.Signature = nd.Signature
		if nd.BelongsTo != "" {
			c, ok := classes[nd.BelongsTo]
			if !ok {
				return errs.New(errs.ErrCodeInvalidDefinition, "unknown owner class %q", nd.BelongsTo)
			}
			n.BelongsTo = c
		}
	case *project.VirtualMethodTableNode:
		used["methods"] = true
		for _, m := range nd.Methods {
			n.Methods = append(n.Methods, project.VirtualMethod{Name: m.Name, Comment: m.Comment})
		}
	}
	if err != nil {
		return err
	}
	if nd.Count != nil && *nd.Count < 0 {
		return errs.New(errs.ErrCodeInvalidDefinition, "%q has negative count %d", nd.Name, *nd.Count)
	}
	if nd.Length != nil && *nd.Length < 0 {
		return errs.New(errs.ErrCodeInvalidDefinition, "%q has negative length %d", nd.Name, *nd.Length)
	}
	return nil
}
