package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/shopsim/floornav/pkg/props"
	"github.com/shopsim/floornav/pkg/zone"
)

// Options configures a Build run. The zero value is usable.
type Options struct {
	// Logger receives build progress at debug/info level. Nil discards.
	Logger *log.Logger

	// Props receives prop placements as they are produced, in addition to
	// the list collected on the Plan. Nil is allowed.
	Props props.Sink
}

// Plan is the result of a successful layout build: the frozen navigation
// graph plus everything consumers need to use it. A Plan is immutable and
// safe for concurrent readers.
type Plan struct {
	Graph    *zone.Graph
	Registry *zone.Registry

	Lobby    zone.ID
	Exterior zone.ID

	Lanes   int
	Rows    int
	Columns int

	Props []props.Placement
}

// Build generates the navigation graph for cfg: validate, resolve counts,
// build the checkout and aisle regions, stitch the macro-topology, assemble
// the registry, freeze.
//
// Generation is single-threaded and runs to completion or fails with a
// configuration error; no partial graph is ever returned. The staff area is
// never represented as a zone, so the registry covers every zone in the
// graph.
func Build(cfg Config, opts Options) (*Plan, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	list := &props.List{}
	var sink props.Sink = list
	if opts.Props != nil {
		sink = teeSink{list, opts.Props}
	}
	sink.Place(props.Placement{Kind: props.KindFloor, Area: cfg.Store})

	b := zone.NewBuilder()

	co, err := buildCheckout(b, cfg.Checkout, sink)
	if err != nil {
		return nil, err
	}
	logger.Debug("checkout region built", "lanes", len(co.lanes))

	ai, err := buildAisles(b, cfg.Aisles, sink)
	if err != nil {
		return nil, err
	}
	logger.Debug("aisle region built", "rows", ai.rows, "columns", ai.columns)

	st, err := stitchRegions(b, cfg, co, ai)
	if err != nil {
		return nil, err
	}
	if n := len(cfg.Entrances); n > 1 {
		logger.Debug("extra entrances ignored", "configured", n, "wired", 1)
	}

	registry := zone.NewRegistry()
	for id := zone.ID(0); int(id) < b.Len(); id++ {
		registry.Add(id)
	}

	plan := &Plan{
		Graph:    b.Freeze(),
		Registry: registry,
		Lobby:    st.lobby,
		Exterior: st.exterior,
		Lanes:    len(co.lanes),
		Rows:     ai.rows,
		Columns:  ai.columns,
		Props:    list.Items(),
	}

	logger.Info("layout built",
		"zones", plan.Graph.Len(),
		"edges", plan.Graph.EdgeCount(),
		"lanes", plan.Lanes,
		"rows", plan.Rows,
		"columns", plan.Columns,
		"props", len(plan.Props))

	return plan, nil
}

// teeSink forwards placements to both the internal list and a caller sink.
type teeSink struct {
	a, b props.Sink
}

func (t teeSink) Place(p props.Placement) {
	t.a.Place(p)
	t.b.Place(p)
}
