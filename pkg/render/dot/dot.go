// Package dot renders the zone adjacency graph as a Graphviz node-link
// diagram, for inspecting topology rather than geometry (the floorplan
// package draws the latter).
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/shopsim/floornav/pkg/plan"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes each zone's area rectangle in its label.
	// When false, only the zone name is shown.
	Detailed bool
}

// ToDOT converts a plan document to Graphviz DOT format. The graph is
// undirected; buffer zones are shaded to distinguish them from walk-target
// zones, and the exterior is drawn dashed.
func ToDOT(doc plan.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph floorplan {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, z := range doc.Zones {
		label := z.Name
		if opts.Detailed {
			label = fmt.Sprintf("%s\n(%.1f, %.1f) %.1fx%.1f", z.Name, z.Area.X, z.Area.Y, z.Area.Width, z.Area.Height)
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if a := nodeStyle(z, doc); a != "" {
			attrs = append(attrs, a)
		}
		fmt.Fprintf(&buf, "  z%d [%s];\n", z.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		fmt.Fprintf(&buf, "  z%d -- z%d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeStyle(z plan.Zone, doc plan.Document) string {
	switch {
	case z.ID == doc.Exterior:
		return "style=\"rounded,filled,dashed\", fillcolor=white"
	case z.ID == doc.Lobby:
		return "fillcolor=lightyellow"
	case strings.Contains(z.Name, "bottom") || strings.Contains(z.Name, "top") || strings.Contains(z.Name, "mid"):
		return "fillcolor=lightgrey"
	}
	return ""
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
