package layout

import (
	"fmt"

	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/props"
	"github.com/shopsim/floornav/pkg/zone"
)

// checkoutRegion holds the zones produced for the checkout block, plus the
// buffer areas the stitcher needs for cross-region seams.
type checkoutRegion struct {
	lanes      []zone.ID
	bottom     zone.ID
	top        zone.ID
	bottomArea geom.Rect
	topArea    geom.Rect
}

// buildCheckout lays out the checkout block: laneCount equal-width lane
// zones left to right, each lane sitting immediately left of its checkout
// unit, with a full-width buffer below (height = bottom gap) and above
// (all remaining height).
//
// Each lane connects to both buffers through zero-height seams at its bottom
// and top edges. Lanes never connect to each other; you cross between lanes
// through a buffer. Edges leaving the region are the stitcher's job.
func buildCheckout(b *zone.Builder, cfg CheckoutConfig, sink props.Sink) (checkoutRegion, error) {
	area := cfg.Area

	laneCount, err := resolveCount(axis{
		label:   "checkout lanes",
		extent:  area.Width,
		item:    cfg.UnitWidth,
		gap:     cfg.LaneGap,
		minimum: cfg.UnitWidth + cfg.LaneGap,
		max:     cfg.MaxLanes,
	})
	if err != nil {
		return checkoutRegion{}, err
	}

	// The height axis hosts a single row of units between the two buffers.
	if _, err := resolveCount(axis{
		label:   "checkout row",
		extent:  area.Height,
		item:    cfg.UnitDepth,
		gap:     0,
		minimum: cfg.BottomGap + cfg.UnitDepth + cfg.TopGap,
		max:     1,
	}); err != nil {
		return checkoutRegion{}, err
	}

	region := checkoutRegion{
		bottomArea: geom.NewRect(area.X, area.Y, area.Width, cfg.BottomGap),
		topArea: geom.NewRect(area.X, area.Y+cfg.BottomGap+cfg.UnitDepth,
			area.Width, area.Height-cfg.BottomGap-cfg.UnitDepth),
	}
	region.bottom = b.Add("checkout-bottom", region.bottomArea)
	region.top = b.Add("checkout-top", region.topArea)

	pitch := cfg.UnitWidth + cfg.LaneGap
	laneY := area.Y + cfg.BottomGap
	for i := 0; i < laneCount; i++ {
		lane := geom.NewRect(area.X+float64(i)*pitch, laneY, cfg.LaneGap, cfg.UnitDepth)
		id := b.Add(fmt.Sprintf("checkout-lane-%d", i), lane)
		region.lanes = append(region.lanes, id)

		sink.Place(props.Placement{
			Kind: props.KindCheckout,
			Area: geom.NewRect(lane.Right(), laneY, cfg.UnitWidth, cfg.UnitDepth),
		})

		if err := b.Connect(geom.HSeam(lane.X, lane.Y, lane.Width), id, region.bottom); err != nil {
			return checkoutRegion{}, err
		}
		if err := b.Connect(geom.HSeam(lane.X, lane.Top(), lane.Width), id, region.top); err != nil {
			return checkoutRegion{}, err
		}
	}

	return region, nil
}
