package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shopsim/floornav/pkg/plan"
)

// testConfigTOML describes a 22x30 store: five checkout lanes beside the
// lobby at the bottom, a 5x7 aisle block above them, staff strip at the top.
const testConfigTOML = `
[store]
x = 0.0
y = 0.0
width = 22.0
height = 30.0

[staff]
x = 0.0
y = 24.0
width = 22.0
height = 6.0

[checkout]
unit_width = 1.0
unit_depth = 2.0
lane_gap = 1.0
bottom_gap = 1.0
top_gap = 1.0
max_lanes = 10

[checkout.area]
x = 0.0
y = 0.0
width = 10.0
height = 6.0

[aisles]
shelf_width = 1.0
shelf_depth = 2.0
pair_gap = 1.0
column_gap = 0.0
row_gap = 1.0
bottom_gap = 2.0
top_gap = 1.0
max_rows = 10
max_columns = 10

[aisles.area]
x = 0.0
y = 6.0
width = 22.0
height = 18.0

[[entrances]]
facing = "bottom"

[entrances.door]
x = 12.0
y = 0.0
width = 2.0
height = 0.0

[entrances.lobby]
x = 10.0
y = 0.0
width = 6.0
height = 6.0
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.toml")
	if err := os.WriteFile(path, []byte(testConfigTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunBuildWritesPlan(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)
	input := writeTestConfig(t)
	output := filepath.Join(t.TempDir(), "store.plan.json")

	err := c.runBuild(context.Background(), input, output, true, "", time.Hour)
	if err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	doc, err := plan.ReadPlanFile(output)
	if err != nil {
		t.Fatalf("ReadPlanFile: %v", err)
	}

	// 5 lanes + 2 checkout buffers, 35 shelf pairs + 4 mids + 2 aisle
	// buffers, lobby, exterior.
	if len(doc.Zones) != 50 {
		t.Errorf("plan has %d zones, want 50", len(doc.Zones))
	}
	if doc.Lanes != 5 || doc.Rows != 5 || doc.Columns != 7 {
		t.Errorf("resolved counts = %d lanes, %dx%d aisles, want 5, 5x7",
			doc.Lanes, doc.Rows, doc.Columns)
	}
	if doc.ID == "" {
		t.Error("plan is missing its document ID")
	}
	if doc.Lobby == doc.Exterior {
		t.Error("lobby and exterior should be distinct zones")
	}
}

func TestRunBuildDefaultOutput(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)
	input := writeTestConfig(t)

	if err := c.runBuild(context.Background(), input, "", true, "", time.Hour); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	want := filepath.Join(filepath.Dir(input), "store.plan.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s not written: %v", want, err)
	}
}

func TestRunBuildUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, log.FatalLevel)
	input := writeTestConfig(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.json")
	if err := c.runBuild(context.Background(), input, first, false, "", time.Hour); err != nil {
		t.Fatalf("first runBuild: %v", err)
	}
	second := filepath.Join(dir, "second.json")
	if err := c.runBuild(context.Background(), input, second, false, "", time.Hour); err != nil {
		t.Fatalf("second runBuild: %v", err)
	}

	a, err := plan.ReadPlanFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := plan.ReadPlanFile(second)
	if err != nil {
		t.Fatal(err)
	}

	// A cache hit replays the stored document, ID included. A rebuild would
	// have minted a fresh one.
	if a.ID != b.ID {
		t.Errorf("second build got plan %s, want cached plan %s", b.ID, a.ID)
	}
}

func TestRunBuildBadConfig(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)

	err := c.runBuild(context.Background(), filepath.Join(t.TempDir(), "missing.toml"), "", true, "", time.Hour)
	if err == nil {
		t.Fatal("runBuild should fail for a missing config")
	}
}

func TestRunCheck(t *testing.T) {
	c := New(io.Discard, log.FatalLevel)

	if err := c.runCheck(writeTestConfig(t)); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
}
