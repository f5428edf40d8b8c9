// Package props collects placements for renderable store props.
//
// The layout builders know where every floor slab, shelf, and checkout unit
// sits, but are not responsible for instantiating visuals. They emit each
// placement (kind + rectangle) into a [Sink]; the rendering side decides what
// to do with it. Sinks never read zone or graph data — props and zones are
// both derived from the same measurements, independently.
package props

import "github.com/shopsim/floornav/pkg/geom"

// Kind identifies the prop type of a placement.
type Kind string

const (
	KindFloor    Kind = "floor"
	KindShelf    Kind = "shelf"
	KindCheckout Kind = "checkout"
)

// Placement is a single prop: its kind plus the rectangle (origin and size)
// the visual representation should occupy.
type Placement struct {
	Kind Kind      `json:"kind" bson:"kind"`
	Area geom.Rect `json:"area" bson:"area"`
}

// Sink receives prop placements as the layout builders produce them.
type Sink interface {
	Place(p Placement)
}

// List is a Sink that accumulates placements in order.
type List struct {
	items []Placement
}

// Place appends a placement.
func (l *List) Place(p Placement) {
	l.items = append(l.items, p)
}

// Items returns the collected placements. The returned slice is the backing
// store; callers must not mutate it while the builder is still running.
func (l *List) Items() []Placement { return l.items }

// CountOf returns how many placements of the given kind were collected.
func (l *List) CountOf(kind Kind) int {
	n := 0
	for _, p := range l.items {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Discard is a Sink that drops every placement. Useful when only the graph
// is needed.
type Discard struct{}

// Place does nothing.
func (Discard) Place(Placement) {}

var (
	_ Sink = (*List)(nil)
	_ Sink = Discard{}
)
