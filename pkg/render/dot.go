package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/project"
)

// Options configures class graph rendering.
type Options struct {
	// Detailed adds the memory size and node count to class labels.
	Detailed bool
}

// ToDOT converts the class reference graph of p to Graphviz DOT format.
// Classes appear in project order and edges in node order, so the output is
// stable for a given project.
func ToDOT(p *project.Project, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	classes := p.Classes()
	for _, c := range classes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", c.ID().String(), fmtLabel(c, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, c := range classes {
		for _, n := range c.Nodes() {
			ref, ok := n.(project.ReferenceNode)
			if !ok || ref.InnerClass() == nil {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", c.ID().String(), ref.InnerClass().ID().String(), strings.Join(fmtEdgeAttrs(n), ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c *project.Class, detailed bool) string {
	if !detailed {
		return c.Name
	}
	return fmt.Sprintf("%s\nsize: %d\nnodes: %d", c.Name, c.MemorySize(), c.NodeCount())
}

func fmtEdgeAttrs(n project.Node) []string {
	label := n.Header().Name
	if arr, ok := n.(project.ArrayNode); ok {
		label = fmt.Sprintf("%s[%d]", label, arr.ElementCount())
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}

	switch n.(type) {
	case *project.ClassPointerNode, *project.ClassPointerArrayNode:
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root tag, which sizes the image in
// points, with one sized in pixels.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
