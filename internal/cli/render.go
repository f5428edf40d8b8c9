package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopsim/floornav/pkg/plan"
	"github.com/shopsim/floornav/pkg/render/dot"
	"github.com/shopsim/floornav/pkg/render/floorplan"
)

// Supported render formats.
const (
	formatFloorplan = "floorplan" // to-scale SVG drawing of the store
	formatDOT       = "dot"       // Graphviz source of the zone graph
	formatGraph     = "graph"     // zone graph rendered to SVG
	formatPNG       = "png"       // zone graph rendered to PNG
)

// renderCommand creates the render command for drawing plans.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output   string
		formats  string
		scale    float64
		noProps  bool
		noSeams  bool
		noLabels bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a navigation plan as a drawing or graph diagram",
		Long: `Render a navigation plan as a drawing or graph diagram.

Formats (comma-separated with -f):
  floorplan  to-scale SVG drawing of zones, seams, and props (default)
  dot        Graphviz DOT source of the zone adjacency graph
  graph      zone adjacency graph rendered to SVG via Graphviz
  png        zone adjacency graph rendered to PNG via Graphviz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := renderOptions{
				output:   output,
				formats:  parseFormats(formats),
				scale:    scale,
				props:    !noProps,
				seams:    !noSeams,
				labels:   !noLabels,
				detailed: detailed,
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base (default: input without extension)")
	cmd.Flags().StringVarP(&formats, "format", "f", formatFloorplan, "output formats, comma-separated")
	cmd.Flags().Float64Var(&scale, "scale", 20, "floorplan pixels per world unit")
	cmd.Flags().BoolVar(&noProps, "no-props", false, "omit prop footprints from the floorplan")
	cmd.Flags().BoolVar(&noSeams, "no-seams", false, "omit adjacency seams from the floorplan")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit zone names from the floorplan")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include zone rectangles in graph labels")

	return cmd
}

type renderOptions struct {
	output   string
	formats  []string
	scale    float64
	props    bool
	seams    bool
	labels   bool
	detailed bool
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatFloorplan}
	}
	return strings.Split(s, ",")
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOptions) error {
	doc, err := plan.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printInfo("Rendering %d zones, %d edges", len(doc.Zones), len(doc.Edges))

	for _, format := range opts.formats {
		path, err := c.renderFormat(ctx, doc, strings.TrimSpace(format), base, opts)
		if err != nil {
			return err
		}
		printFile(path)
	}

	printSuccess("Render complete")
	return nil
}

func (c *CLI) renderFormat(ctx context.Context, doc plan.Document, format, base string, opts renderOptions) (string, error) {
	switch format {
	case formatFloorplan:
		var fpOpts []floorplan.Option
		fpOpts = append(fpOpts, floorplan.WithScale(opts.scale))
		if opts.props {
			fpOpts = append(fpOpts, floorplan.WithProps())
		}
		if opts.seams {
			fpOpts = append(fpOpts, floorplan.WithSeams())
		}
		if opts.labels {
			fpOpts = append(fpOpts, floorplan.WithLabels())
		}
		path := base + ".svg"
		return path, writeFile(path, floorplan.RenderSVG(doc, fpOpts...))

	case formatDOT:
		path := base + ".dot"
		return path, writeFile(path, []byte(dot.ToDOT(doc, dot.Options{Detailed: opts.detailed})))

	case formatGraph:
		data, err := dot.RenderSVG(ctx, dot.ToDOT(doc, dot.Options{Detailed: opts.detailed}))
		if err != nil {
			return "", fmt.Errorf("render graph SVG: %w", err)
		}
		path := base + ".graph.svg"
		return path, writeFile(path, data)

	case formatPNG:
		data, err := dot.RenderPNG(ctx, dot.ToDOT(doc, dot.Options{Detailed: opts.detailed}))
		if err != nil {
			return "", fmt.Errorf("render graph PNG: %w", err)
		}
		path := base + ".png"
		return path, writeFile(path, data)

	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s, %s, or %s)",
			format, formatFloorplan, formatDOT, formatGraph, formatPNG)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
