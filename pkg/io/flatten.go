package io

import (
	"io"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/project"
)

// SerialisationClassName names the class that holds the loose nodes passed
// to [WriteNodes].
const SerialisationClassName = "SerialisationClass"

// WriteNodes writes an ad-hoc list of nodes as a container to w.
//
// The nodes are collected into a transient project whose first class is an
// empty class named [SerialisationClassName]:
//
//   - a *project.Class in nodes is added to the project as a class of its own
//   - every other node is appended to the wrapper class
//   - the target class of every reference node is added, followed by every
//     class reachable from it through further reference nodes
//
// A class already in the project is not visited again, so self-references
// and reference cycles terminate and no class is written twice. An empty
// node list yields a container with a single empty wrapper class.
//
// Caller classes and nodes are not modified.
func WriteNodes(nodes []project.Node, w io.Writer, opts Options) error {
	if w == nil {
		return errs.New(errs.ErrCodeInvalidInput, "writer must not be nil")
	}
	for i, n := range nodes {
		if err := validateNode(n); err != nil {
			return errs.Wrap(errs.GetCode(err), err, "node %d", i)
		}
	}

	p, err := flatten(nodes)
	if err != nil {
		return err
	}
	defer p.Close()

	return WriteProject(p, w, opts)
}

// flatten builds the transient project written by [WriteNodes].
func flatten(nodes []project.Node) (*project.Project, error) {
	p := project.New()
	wrapper := project.NewClass(SerialisationClassName)
	if err := p.AddClass(wrapper); err != nil {
		return nil, err
	}

	for _, n := range nodes {
		if c, ok := n.(*project.Class); ok {
			addClass(p, c)
			continue
		}
		if ref, ok := n.(project.ReferenceNode); ok {
			addClass(p, ref.InnerClass())
		}
		if err := wrapper.AddNode(n); err != nil {
			_ = p.Close()
			return nil, err
		}
	}
	return p, nil
}

// addClass adds c and every class reachable from it. Project membership is
// the only visited check.
func addClass(p *project.Project, c *project.Class) {
	if c == nil || p.ContainsClass(c.ID()) {
		return
	}
	// AddClass only fails for nil or already present classes.
	_ = p.AddClass(c)

	for _, n := range c.Nodes() {
		if ref, ok := n.(project.ReferenceNode); ok {
			addClass(p, ref.InnerClass())
		}
	}
}
