// Package floorplan renders a plan document as a to-scale SVG drawing:
// zone rectangles with their adjacency seams, plus prop footprints. World
// coordinates are Y-up with the origin at the bottom-left, so rendering
// flips the vertical axis into SVG's Y-down space.
package floorplan

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/plan"
	"github.com/shopsim/floornav/pkg/props"
)

const margin = 1.0 // world units of padding around the drawing

type Option func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	showProps  bool
	showSeams  bool
	showLabels bool
}

// WithScale sets the pixels-per-world-unit factor. Default is 20.
func WithScale(s float64) Option { return func(r *svgRenderer) { r.scale = s } }

// WithProps draws prop footprints on top of the zones.
func WithProps() Option { return func(r *svgRenderer) { r.showProps = true } }

// WithSeams draws the shared boundary of every adjacent zone pair.
func WithSeams() Option { return func(r *svgRenderer) { r.showSeams = true } }

// WithLabels writes each zone's name at its center.
func WithLabels() Option { return func(r *svgRenderer) { r.showLabels = true } }

// RenderSVG draws the plan to scale and returns the SVG document.
func RenderSVG(doc plan.Document, opts ...Option) []byte {
	r := svgRenderer{scale: 20}
	for _, opt := range opts {
		opt(&r)
	}

	bounds := planBounds(doc)
	width := (bounds.Width + 2*margin) * r.scale
	height := (bounds.Height + 2*margin) * r.scale

	// Map a world point to SVG space: shift into the padded frame, flip Y.
	px := func(x float64) float64 { return (x - bounds.X + margin) * r.scale }
	py := func(y float64) float64 { return height - (y-bounds.Y+margin)*r.scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	for _, z := range doc.Zones {
		renderRect(&buf, z.Area, px, py, r.scale, zoneFill(z, doc), "#333", 1)
	}

	if r.showProps {
		for _, p := range doc.Props {
			renderRect(&buf, p.Area, px, py, r.scale, propFill(p.Kind), "#111", 0.5)
		}
	}

	if r.showSeams {
		for _, e := range doc.Edges {
			renderSeam(&buf, e.Boundary, px, py, r.scale)
		}
	}

	if r.showLabels {
		for _, z := range doc.Zones {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="#222">%s</text>`+"\n",
				px(z.Area.CenterX()), py(z.Area.CenterY()), r.scale*0.45, html.EscapeString(z.Name))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRect(buf *bytes.Buffer, area geom.Rect, px, py func(float64) float64, scale float64, fill, stroke string, strokeWidth float64) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		px(area.X), py(area.Top()), area.Width*scale, area.Height*scale, fill, stroke, strokeWidth)
}

// renderSeam draws a boundary rect as a line. Seams are degenerate along one
// axis, so the rect collapses to the segment agents cross.
func renderSeam(buf *bytes.Buffer, seam geom.Rect, px, py func(float64) float64, scale float64) {
	x1, y1 := px(seam.X), py(seam.Y)
	x2, y2 := px(seam.Right()), py(seam.Top())
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c33" stroke-width="%.1f" stroke-dasharray="%.1f"/>`+"\n",
		x1, y1, x2, y2, scale*0.1, scale*0.2)
}

func planBounds(doc plan.Document) geom.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, z := range doc.Zones {
		minX = math.Min(minX, z.Area.X)
		minY = math.Min(minY, z.Area.Y)
		maxX = math.Max(maxX, z.Area.Right())
		maxY = math.Max(maxY, z.Area.Top())
	}
	if len(doc.Zones) == 0 {
		return geom.Rect{}
	}
	return geom.NewRect(minX, minY, maxX-minX, maxY-minY)
}

func zoneFill(z plan.Zone, doc plan.Document) string {
	switch {
	case z.ID == doc.Exterior:
		return "#f5f5f5"
	case z.ID == doc.Lobby:
		return "#fff8dc"
	case strings.Contains(z.Name, "lane"):
		return "#dbeafe"
	case strings.Contains(z.Name, "pair"):
		return "#dcfce7"
	default:
		return "#eeeeee"
	}
}

func propFill(kind props.Kind) string {
	switch kind {
	case props.KindShelf:
		return "#86efac"
	case props.KindCheckout:
		return "#93c5fd"
	default:
		return "none"
	}
}
