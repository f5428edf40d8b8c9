package plan

import (
	"slices"

	"github.com/google/uuid"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/layout"
	"github.com/shopsim/floornav/pkg/props"
	"github.com/shopsim/floornav/pkg/zone"
)

// Document is the canonical serialization format for a built layout plan.
// Used for file output, API responses, and the plan archive.
//
// The format is designed for round-trip fidelity: build → export →
// re-import produces an identical graph. Zone IDs are the dense arena
// indices; each undirected edge appears once with A < B.
type Document struct {
	ID string `json:"id" bson:"_id"`

	Zones []Zone            `json:"zones" bson:"zones"`
	Edges []Edge            `json:"edges" bson:"edges"`
	Props []props.Placement `json:"props,omitempty" bson:"props,omitempty"`

	Lobby    int `json:"lobby" bson:"lobby"`
	Exterior int `json:"exterior" bson:"exterior"`

	Lanes   int `json:"lanes" bson:"lanes"`
	Rows    int `json:"rows" bson:"rows"`
	Columns int `json:"columns" bson:"columns"`
}

// Zone is the serialized form of a navigation zone.
type Zone struct {
	ID   int       `json:"id" bson:"id"`
	Name string    `json:"name,omitempty" bson:"name,omitempty"`
	Area geom.Rect `json:"area" bson:"area"`
}

// Edge is an undirected adjacency between two zones with the boundary they
// share. The boundary may be degenerate (zero width or height).
type Edge struct {
	A        int       `json:"a" bson:"a"`
	B        int       `json:"b" bson:"b"`
	Boundary geom.Rect `json:"boundary" bson:"boundary"`
}

// FromPlan converts a built plan to its serialization format and assigns a
// fresh document ID. Zones appear in arena order, edges sorted by (A, B).
func FromPlan(p *layout.Plan) Document {
	doc := Document{
		ID:       uuid.NewString(),
		Lobby:    int(p.Lobby),
		Exterior: int(p.Exterior),
		Lanes:    p.Lanes,
		Rows:     p.Rows,
		Columns:  p.Columns,
		Props:    p.Props,
	}

	for id := zone.ID(0); int(id) < p.Graph.Len(); id++ {
		z, _ := p.Graph.Zone(id)
		doc.Zones = append(doc.Zones, Zone{ID: int(id), Name: z.Name, Area: z.Area})

		for _, n := range p.Graph.Neighbors(id) {
			if n.ID > id {
				doc.Edges = append(doc.Edges, Edge{A: int(id), B: int(n.ID), Boundary: n.Boundary})
			}
		}
	}

	slices.SortFunc(doc.Edges, func(a, b Edge) int {
		if a.A != b.A {
			return a.A - b.A
		}
		return a.B - b.B
	})

	return doc
}

// ToPlan rebuilds the frozen graph from a document. Returns INVALID_FORMAT
// errors for documents whose zones are not dense arena indices or whose
// edges violate graph constraints.
func ToPlan(doc Document) (*layout.Plan, error) {
	b := zone.NewBuilder()
	for i, z := range doc.Zones {
		if z.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "zone %d has ID %d, want dense arena order", i, z.ID)
		}
		b.Add(z.Name, z.Area)
	}

	for _, e := range doc.Edges {
		if err := b.Connect(e.Boundary, zone.ID(e.A), zone.ID(e.B)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge %d-%d", e.A, e.B)
		}
	}

	if doc.Lobby < 0 || doc.Lobby >= len(doc.Zones) || doc.Exterior < 0 || doc.Exterior >= len(doc.Zones) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "lobby/exterior reference unknown zones")
	}

	registry := zone.NewRegistry()
	for id := range doc.Zones {
		registry.Add(zone.ID(id))
	}

	return &layout.Plan{
		Graph:    b.Freeze(),
		Registry: registry,
		Lobby:    zone.ID(doc.Lobby),
		Exterior: zone.ID(doc.Exterior),
		Lanes:    doc.Lanes,
		Rows:     doc.Rows,
		Columns:  doc.Columns,
		Props:    doc.Props,
	}, nil
}
