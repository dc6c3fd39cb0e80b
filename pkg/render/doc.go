// Package render draws the class reference graph of a project.
//
// # Overview
//
// Every class becomes a box and every reference node becomes an arrow from
// the class holding it to the class it targets. Embedded instances are drawn
// solid, pointers dashed, and arrays carry their element count in the edge
// label. Self-references appear as loops.
//
// # Usage
//
// Convert a project to DOT, then render it to SVG:
//
//	dot := render.ToDOT(p, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// SVG rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly; no system installation is required.
package render
