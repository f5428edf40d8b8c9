package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/plan"
)

func writeTestPlan(t *testing.T) string {
	t.Helper()
	doc := plan.Document{
		ID: "test-plan",
		Zones: []plan.Zone{
			{ID: 0, Name: "lobby", Area: geom.NewRect(0, 0, 6, 6)},
			{ID: 1, Name: "exterior", Area: geom.NewRect(0, -6, 6, 6)},
		},
		Edges: []plan.Edge{
			{A: 0, B: 1, Boundary: geom.HSeam(2, 0, 2)},
		},
		Lobby:    0,
		Exterior: 1,
	}
	path := filepath.Join(t.TempDir(), "store.plan.json")
	if err := plan.WritePlanFile(doc, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRenderFloorplanAndDOT(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)
	input := writeTestPlan(t)
	base := filepath.Join(t.TempDir(), "out")

	opts := renderOptions{
		output:  base,
		formats: []string{formatFloorplan, formatDOT},
		scale:   20,
		props:   true,
		seams:   true,
		labels:  true,
	}
	if err := c.runRender(context.Background(), input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("floorplan output: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("floorplan output is not SVG: %.80s", svg)
	}

	dotSrc, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatalf("dot output: %v", err)
	}
	if !strings.Contains(string(dotSrc), "z0 -- z1;") {
		t.Errorf("dot output missing edge:\n%s", dotSrc)
	}
}

func TestRunRenderUnknownFormat(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)
	input := writeTestPlan(t)

	opts := renderOptions{
		formats: []string{"tiff"},
		scale:   20,
	}
	if err := c.runRender(context.Background(), input, opts); err == nil {
		t.Fatal("runRender should reject unknown formats")
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != formatFloorplan {
		t.Errorf("parseFormats(\"\") = %v, want default floorplan", got)
	}
	if got := parseFormats("dot,png"); len(got) != 2 || got[0] != formatDOT || got[1] != formatPNG {
		t.Errorf("parseFormats(\"dot,png\") = %v", got)
	}
}
