package project

import (
	"errors"
	"reflect"
	"slices"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/nodeid"
)

var (
	// ErrNilClass is returned by [Project.AddClass] when the class is nil.
	ErrNilClass = errors.New("class must not be nil")

	// ErrNilNode is returned when a nil node is added to a class.
	ErrNilNode = errors.New("node must not be nil")

	// ErrClassAsNode is returned when a class is added to a node list.
	// Embed a class with [ClassInstanceNode] instead.
	ErrClassAsNode = errors.New("class cannot be a node of another class")

	// ErrDuplicateClass is returned by [Project.AddClass] when a class with
	// the same ID is already part of the project.
	ErrDuplicateClass = errors.New("duplicate class ID")

	// ErrUnknownClass is returned by [Project.RemoveClass] when the class is
	// not part of the project.
	ErrUnknownClass = errors.New("unknown class")

	// ErrClassInUse is returned by [Project.RemoveClass] when another class
	// in the project still references the class.
	ErrClassInUse = errors.New("class is referenced by another class")
)

// Project owns a set of classes and the user's custom metadata.
//
// Classes are kept in an arena keyed by ID; insertion order is preserved and
// is the order classes are saved in. The arena membership test
// ([Project.ContainsClass]) is what graph walks use to avoid visiting a class
// twice.
//
// The zero value is not usable; use [New]. Project is not safe for
// concurrent modification.
type Project struct {
	classes []*Class
	index   map[nodeid.ID]*Class
	custom  *CustomData
}

// New creates an empty project.
func New() *Project {
	return &Project{
		index:  make(map[nodeid.ID]*Class),
		custom: NewCustomData(),
	}
}

// AddClass appends c to the project.
// Returns ErrNilClass if c is nil or ErrDuplicateClass if a class with the
// same ID is already present.
func (p *Project) AddClass(c *Class) error {
	if c == nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, ErrNilClass, "add class")
	}
	if _, exists := p.index[c.ID()]; exists {
		return errs.Wrap(errs.ErrCodeDuplicateClass, ErrDuplicateClass, "class %q (%s)", c.Name, c.ID())
	}
	p.classes = append(p.classes, c)
	p.index[c.ID()] = c
	return nil
}

// ContainsClass reports whether a class with the given ID is in the project.
func (p *Project) ContainsClass(id nodeid.ID) bool {
	_, ok := p.index[id]
	return ok
}

// Class returns the class with the given ID.
func (p *Project) Class(id nodeid.ID) (*Class, bool) {
	c, ok := p.index[id]
	return c, ok
}

// ClassByName returns the first class with the given name.
func (p *Project) ClassByName(name string) (*Class, bool) {
	i := slices.IndexFunc(p.classes, func(c *Class) bool { return c.Name == name })
	if i < 0 {
		return nil, false
	}
	return p.classes[i], true
}

// Classes returns the classes in insertion order. The returned slice is a
// copy.
func (p *Project) Classes() []*Class { return slices.Clone(p.classes) }

// ClassCount returns the number of classes in the project.
func (p *Project) ClassCount() int { return len(p.classes) }

// RemoveClass removes c from the project.
// Returns ErrUnknownClass if c is not part of the project, or ErrClassInUse
// if another class in the project references it.
func (p *Project) RemoveClass(c *Class) error {
	if c == nil || !p.ContainsClass(c.ID()) {
		return errs.Wrap(errs.ErrCodeNotFound, ErrUnknownClass, "remove class")
	}
	for _, other := range p.classes {
		if other.ID() == c.ID() {
			continue
		}
		if slices.ContainsFunc(other.References(), func(r *Class) bool { return r.ID() == c.ID() }) {
			return errs.Wrap(errs.ErrCodeClassInUse, ErrClassInUse, "class %q is referenced by %q", c.Name, other.Name)
		}
	}
	p.classes = slices.DeleteFunc(p.classes, func(x *Class) bool { return x.ID() == c.ID() })
	delete(p.index, c.ID())
	return nil
}

// CustomData returns the project's custom key/value metadata.
func (p *Project) CustomData() *CustomData { return p.custom }

// Close releases the classes and custom data held by the project. The
// classes themselves are not modified. Close is idempotent and always
// returns nil.
func (p *Project) Close() error {
	p.classes = nil
	clear(p.index)
	p.custom.clear()
	return nil
}

// IsNil reports whether n is nil, including a nil pointer of a concrete node
// type stored in the interface.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
