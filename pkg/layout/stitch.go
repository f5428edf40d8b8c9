package layout

import (
	"math"

	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/zone"
)

// stitchResult carries the zones created by the stitcher itself.
type stitchResult struct {
	lobby    zone.ID
	exterior zone.ID
}

// stitchRegions wires the fixed macro-topology between the regions:
//
//   - the entrance door connects lobby and exterior (the only path between
//     them); the exterior mirrors the lobby footprint, shifted outward along
//     the entrance wall's normal
//   - the checkout top and bottom buffers connect laterally to the lobby
//     along their shared vertical edge
//   - the lobby and the checkout top buffer each connect upward to the aisle
//     bottom buffer (both sit below the aisle block)
//
// Only the first configured entrance/lobby pair participates.
func stitchRegions(b *zone.Builder, cfg Config, co checkoutRegion, ai aisleRegion) (stitchResult, error) {
	ent := cfg.Entrances[0]

	lobby := b.Add("lobby", ent.Lobby)
	exterior := b.Add("exterior", exteriorArea(ent))
	res := stitchResult{lobby: lobby, exterior: exterior}

	if err := b.Connect(ent.Door, lobby, exterior); err != nil {
		return stitchResult{}, err
	}
	if err := b.Connect(verticalSeam(co.topArea, ent.Lobby), co.top, lobby); err != nil {
		return stitchResult{}, err
	}
	if err := b.Connect(verticalSeam(co.bottomArea, ent.Lobby), co.bottom, lobby); err != nil {
		return stitchResult{}, err
	}
	if err := b.Connect(horizontalSeam(ent.Lobby, ai.bottomArea), lobby, ai.bottom); err != nil {
		return stitchResult{}, err
	}
	if err := b.Connect(horizontalSeam(co.topArea, ai.bottomArea), co.top, ai.bottom); err != nil {
		return stitchResult{}, err
	}

	return res, nil
}

// exteriorArea mirrors the lobby footprint just outside the entrance wall.
func exteriorArea(ent Entrance) geom.Rect {
	l := ent.Lobby
	switch ent.Facing {
	case FacingLeft:
		return l.Translate(-l.Width, 0)
	case FacingRight:
		return l.Translate(l.Width, 0)
	case FacingBottom:
		return l.Translate(0, -l.Height)
	default: // FacingTop
		return l.Translate(0, l.Height)
	}
}

// verticalSeam returns the zero-width boundary where a and b share a
// vertical edge, spanning the overlap of their Y ranges.
func verticalSeam(a, b geom.Rect) geom.Rect {
	x := a.Right()
	if b.Right() <= a.X+geom.Epsilon {
		x = a.X
	}
	y0 := math.Max(a.Y, b.Y)
	y1 := math.Min(a.Top(), b.Top())
	if y1 < y0 {
		y1 = y0
	}
	return geom.VSeam(x, y0, y1-y0)
}

// horizontalSeam returns the zero-height boundary where upper rests on
// lower, spanning the overlap of their X ranges.
func horizontalSeam(lower, upper geom.Rect) geom.Rect {
	x0 := math.Max(lower.X, upper.X)
	x1 := math.Min(lower.Right(), upper.Right())
	if x1 < x0 {
		x1 = x0
	}
	return geom.HSeam(x0, lower.Top(), x1-x0)
}
