// Package layout turns a store layout configuration into a compact
// navigation graph for simulated shoppers.
//
// Rather than tiling the walkable floor into a dense waypoint grid, the
// builder partitions it into a handful of semantically meaningful zones —
// checkout lanes, aisle gaps, the buffer corridors around and between them,
// the lobby, and the exterior — and connects only zones whose boundaries are
// physically traversable. The resulting graph encodes real walkability: an
// aisle row can only be left through its ends, never through a shelf.
//
// # Layout convention
//
// The builder assumes the fixed rectangular macro-layout of the simulated
// store: a staff-only strip at the top (never represented as a zone), the
// aisle block beneath it, and the checkout block beside the lobby at the
// bottom. Stitching rules between regions are hard-wired to this convention;
// it is not a general-purpose navmesh.
//
// # Usage
//
// Build everything in one synchronous call before any consumer reads the
// graph:
//
//	cfg, err := layout.LoadConfig("store.toml")
//	if err != nil { ... }
//	plan, err := layout.Build(cfg, layout.Options{})
//	if err != nil { ... }
//	for _, n := range plan.Graph.Neighbors(plan.Lobby) { ... }
//
// A failed build returns a coded configuration error and no partial graph.
// The returned [Plan] is frozen and safe for concurrent readers.
package layout
