// Package zone provides the navigation graph primitive: named rectangular
// walkable zones connected by shared boundary segments.
//
// Zones are allocated in an arena and addressed by stable integer [ID]s.
// A [Builder] accumulates zones and adjacency during layout generation and
// is then frozen into an immutable [Graph] that may be shared freely by
// concurrent readers. Adjacency is stored symmetrically on both endpoints:
// the only traversal pattern consumers need is "iterate my neighbors", and
// duplicating the boundary on each side keeps that a single map walk.
package zone

import (
	"errors"
	"slices"

	"github.com/shopsim/floornav/pkg/geom"
)

var (
	// ErrUnknownZone is returned by [Builder.Connect] when an endpoint ID
	// was not allocated by this builder.
	ErrUnknownZone = errors.New("unknown zone ID")

	// ErrSelfEdge is returned by [Builder.Connect] when both endpoints are
	// the same zone. A zone adjacent to itself would corrupt its own
	// adjacency entry, so the case is rejected outright.
	ErrSelfEdge = errors.New("zone cannot be adjacent to itself")

	// ErrDuplicateEdge is returned by [Builder.Connect] when the two zones
	// are already connected. Adjacency entries are append-only; an existing
	// boundary is never silently replaced.
	ErrDuplicateEdge = errors.New("zones are already connected")

	// ErrFrozen is returned by [Builder.Connect] after [Builder.Freeze] has
	// been called.
	ErrFrozen = errors.New("builder is frozen")
)

// ID addresses a zone within its graph. IDs are dense, starting at 0 in
// allocation order.
type ID int

// None is the ID held by agents that currently have no zone reference.
const None ID = -1

// Zone is a named rectangular walkable region. The name is a debug label
// only; identity is the ID.
type Zone struct {
	Name string
	Area geom.Rect
}

// Neighbor pairs an adjacent zone with the boundary shared with it. The
// boundary may be degenerate (zero width or height): a line-segment crossing
// rather than an area overlap.
type Neighbor struct {
	ID       ID
	Boundary geom.Rect
}

// Builder accumulates zones and adjacency during layout generation.
// It is append-only: zones and edges are added, never removed or mutated.
// Builder is not safe for concurrent use; generation is single-threaded.
type Builder struct {
	zones  []Zone
	adj    []map[ID]geom.Rect
	frozen bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add allocates a zone with empty adjacency and returns its ID.
// The area is not validated beyond being well-formed; tiling correctness is
// the caller's responsibility. Add panics if the builder is already frozen.
func (b *Builder) Add(name string, area geom.Rect) ID {
	if b.frozen {
		panic("zone: Add after Freeze")
	}
	id := ID(len(b.zones))
	b.zones = append(b.zones, Zone{Name: name, Area: area})
	b.adj = append(b.adj, make(map[ID]geom.Rect))
	return id
}

// Len returns the number of zones allocated so far.
func (b *Builder) Len() int { return len(b.zones) }

// Connect records that zones a and bz share the traversable boundary.
// The boundary is inserted into both adjacency maps, keeping the graph
// symmetric by construction.
func (b *Builder) Connect(boundary geom.Rect, a, bz ID) error {
	if b.frozen {
		return ErrFrozen
	}
	if a == bz {
		return ErrSelfEdge
	}
	if !b.valid(a) || !b.valid(bz) {
		return ErrUnknownZone
	}
	if _, exists := b.adj[a][bz]; exists {
		return ErrDuplicateEdge
	}
	b.adj[a][bz] = boundary
	b.adj[bz][a] = boundary
	return nil
}

func (b *Builder) valid(id ID) bool {
	return id >= 0 && int(id) < len(b.zones)
}

// Freeze seals the builder and returns the immutable graph view. The builder
// must not be used afterwards; further Connect calls return [ErrFrozen] and
// further Add calls panic.
func (b *Builder) Freeze() *Graph {
	b.frozen = true
	return &Graph{zones: b.zones, adj: b.adj}
}

// Graph is the frozen navigation graph. It is never mutated after Freeze and
// is safe for concurrent readers without locking.
type Graph struct {
	zones []Zone
	adj   []map[ID]geom.Rect
}

// Len returns the number of zones in the graph.
func (g *Graph) Len() int { return len(g.zones) }

// Zone returns the zone for id.
func (g *Graph) Zone(id ID) (Zone, bool) {
	if id < 0 || int(id) >= len(g.zones) {
		return Zone{}, false
	}
	return g.zones[id], true
}

// EdgeCount returns the number of distinct zone pairs connected in the
// graph. Each symmetric adjacency pair counts once.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, m := range g.adj {
		total += len(m)
	}
	return total / 2
}

// Degree returns the number of neighbors of id, or 0 for unknown IDs.
func (g *Graph) Degree(id ID) int {
	if id < 0 || int(id) >= len(g.adj) {
		return 0
	}
	return len(g.adj[id])
}

// Neighbors returns the neighbors of id with their shared boundaries,
// sorted by ID for deterministic iteration.
func (g *Graph) Neighbors(id ID) []Neighbor {
	if id < 0 || int(id) >= len(g.adj) {
		return nil
	}
	out := make([]Neighbor, 0, len(g.adj[id]))
	for n, boundary := range g.adj[id] {
		out = append(out, Neighbor{ID: n, Boundary: boundary})
	}
	slices.SortFunc(out, func(a, b Neighbor) int { return int(a.ID - b.ID) })
	return out
}

// Boundary returns the boundary shared by a and b, if they are adjacent.
func (g *Graph) Boundary(a, b ID) (geom.Rect, bool) {
	if a < 0 || int(a) >= len(g.adj) {
		return geom.Rect{}, false
	}
	boundary, ok := g.adj[a][b]
	return boundary, ok
}

// Reachable returns every zone reachable from start by walking adjacency,
// including start itself, in breadth-first order. Returns nil for unknown
// IDs.
func (g *Graph) Reachable(start ID) []ID {
	if start < 0 || int(start) >= len(g.zones) {
		return nil
	}
	visited := make([]bool, len(g.zones))
	visited[start] = true
	order := []ID{start}

	for head := 0; head < len(order); head++ {
		for _, n := range g.Neighbors(order[head]) {
			if !visited[n.ID] {
				visited[n.ID] = true
				order = append(order, n.ID)
			}
		}
	}
	return order
}
