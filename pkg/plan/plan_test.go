package plan

import (
	"path/filepath"
	"testing"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/layout"
	"github.com/shopsim/floornav/pkg/zone"
)

func buildTestPlan(t *testing.T) *layout.Plan {
	t.Helper()
	cfg := layout.Config{
		Store: geom.NewRect(0, 0, 22, 30),
		Staff: geom.NewRect(0, 24, 22, 6),
		Checkout: layout.CheckoutConfig{
			Area:      geom.NewRect(0, 0, 10, 6),
			UnitWidth: 1, UnitDepth: 2, LaneGap: 1,
			BottomGap: 1, TopGap: 1, MaxLanes: 10,
		},
		Aisles: layout.AisleConfig{
			Area:       geom.NewRect(0, 6, 22, 18),
			ShelfWidth: 1, ShelfDepth: 2, PairGap: 1,
			ColumnGap: 0, RowGap: 1, BottomGap: 2, TopGap: 1,
			MaxRows: 10, MaxColumns: 10,
		},
		Entrances: []layout.Entrance{{
			Door:   geom.HSeam(12, 0, 2),
			Lobby:  geom.NewRect(10, 0, 6, 6),
			Facing: layout.FacingBottom,
		}},
	}
	p, err := layout.Build(cfg, layout.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	p := buildTestPlan(t)
	doc := FromPlan(p)

	if doc.ID == "" {
		t.Error("document ID not assigned")
	}
	if len(doc.Zones) != p.Graph.Len() {
		t.Errorf("zones = %d, want %d", len(doc.Zones), p.Graph.Len())
	}
	if len(doc.Edges) != p.Graph.EdgeCount() {
		t.Errorf("edges = %d, want %d (each pair once)", len(doc.Edges), p.Graph.EdgeCount())
	}

	data, err := MarshalPlan(doc)
	if err != nil {
		t.Fatalf("MarshalPlan: %v", err)
	}
	decoded, err := UnmarshalPlan(data)
	if err != nil {
		t.Fatalf("UnmarshalPlan: %v", err)
	}

	restored, err := ToPlan(decoded)
	if err != nil {
		t.Fatalf("ToPlan: %v", err)
	}

	if restored.Graph.Len() != p.Graph.Len() || restored.Graph.EdgeCount() != p.Graph.EdgeCount() {
		t.Fatalf("restored graph %d/%d, want %d/%d",
			restored.Graph.Len(), restored.Graph.EdgeCount(), p.Graph.Len(), p.Graph.EdgeCount())
	}
	if restored.Lobby != p.Lobby || restored.Exterior != p.Exterior {
		t.Errorf("lobby/exterior = %d/%d, want %d/%d", restored.Lobby, restored.Exterior, p.Lobby, p.Exterior)
	}

	// Boundaries survive intact, including degenerate seams.
	for id := zone.ID(0); int(id) < p.Graph.Len(); id++ {
		for _, n := range p.Graph.Neighbors(id) {
			got, ok := restored.Graph.Boundary(id, n.ID)
			if !ok {
				t.Fatalf("edge %d-%d lost in round trip", id, n.ID)
			}
			if got != n.Boundary {
				t.Errorf("boundary %d-%d = %+v, want %+v", id, n.ID, got, n.Boundary)
			}
		}
	}

	if len(restored.Props) != len(p.Props) {
		t.Errorf("props = %d, want %d", len(restored.Props), len(p.Props))
	}
}

func TestEdgesSortedAndDeduplicated(t *testing.T) {
	doc := FromPlan(buildTestPlan(t))

	for i, e := range doc.Edges {
		if e.A >= e.B {
			t.Errorf("edge %d: A=%d >= B=%d", i, e.A, e.B)
		}
		if i > 0 {
			prev := doc.Edges[i-1]
			if prev.A > e.A || (prev.A == e.A && prev.B >= e.B) {
				t.Errorf("edges not sorted at %d: %+v before %+v", i, prev, e)
			}
		}
	}
}

func TestWriteReadPlanFile(t *testing.T) {
	doc := FromPlan(buildTestPlan(t))
	path := filepath.Join(t.TempDir(), "store.plan.json")

	if err := WritePlanFile(doc, path); err != nil {
		t.Fatalf("WritePlanFile: %v", err)
	}
	got, err := ReadPlanFile(path)
	if err != nil {
		t.Fatalf("ReadPlanFile: %v", err)
	}
	if got.ID != doc.ID || len(got.Zones) != len(doc.Zones) || len(got.Edges) != len(doc.Edges) {
		t.Errorf("read back %s with %d zones / %d edges, want %s with %d / %d",
			got.ID, len(got.Zones), len(got.Edges), doc.ID, len(doc.Zones), len(doc.Edges))
	}
}

func TestToPlanRejectsMalformedDocuments(t *testing.T) {
	valid := FromPlan(buildTestPlan(t))

	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{"SparseZoneIDs", func(d *Document) { d.Zones[3].ID = 99 }},
		{"SelfEdge", func(d *Document) { d.Edges[0].B = d.Edges[0].A }},
		{"UnknownEdgeEndpoint", func(d *Document) { d.Edges[0].B = len(d.Zones) + 5 }},
		{"BadLobby", func(d *Document) { d.Lobby = -2 }},
		{"BadExterior", func(d *Document) { d.Exterior = len(d.Zones) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid
			doc.Zones = append([]Zone(nil), valid.Zones...)
			doc.Edges = append([]Edge(nil), valid.Edges...)
			tt.mutate(&doc)

			if _, err := ToPlan(doc); !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ToPlan = %v, want INVALID_FORMAT", err)
			}
		})
	}
}
