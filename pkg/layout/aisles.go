package layout

import (
	"fmt"

	"github.com/shopsim/floornav/pkg/geom"
	"github.com/shopsim/floornav/pkg/props"
	"github.com/shopsim/floornav/pkg/zone"
)

// aisleRegion holds the zones produced for the aisle block. pairs is
// row-major: pairs[row*columns+col].
type aisleRegion struct {
	pairs      []zone.ID
	mid        []zone.ID // between row r and r+1, len = rows-1
	bottom     zone.ID
	top        zone.ID
	bottomArea geom.Rect
	rows       int
	columns    int
}

func (r aisleRegion) pair(row, col int) zone.ID {
	return r.pairs[row*r.columns+col]
}

// buildAisles lays out the aisle block: a rows × columns grid of aisle-pair
// zones (the walkable gap between two facing shelves), full-width mid
// buffers between consecutive rows, a bottom buffer below the first row and
// a top buffer taking the remaining height above the last row.
//
// Every pair connects through zero-height seams to the buffer directly above
// and below it, and to nothing else: pairs in the same row do not connect to
// each other, and mid buffers do not connect to each other. Crossing between
// rows means walking to the row's end, so the topology is strictly layered
// pair ↔ buffer.
func buildAisles(b *zone.Builder, cfg AisleConfig, sink props.Sink) (aisleRegion, error) {
	area := cfg.Area
	colPitch := 2*cfg.ShelfWidth + cfg.PairGap

	columns, err := resolveCount(axis{
		label:   "aisle columns",
		extent:  area.Width,
		item:    colPitch,
		gap:     cfg.ColumnGap,
		minimum: colPitch,
		max:     cfg.MaxColumns,
	})
	if err != nil {
		return aisleRegion{}, err
	}

	// Rows have one fewer inter-row gap than rows, so the usable extent is
	// padded by a single gap before resolving.
	usableH := area.Height - cfg.BottomGap - cfg.TopGap
	rows, err := resolveCount(axis{
		label:   "aisle rows",
		extent:  usableH + cfg.RowGap,
		item:    cfg.ShelfDepth,
		gap:     cfg.RowGap,
		minimum: cfg.ShelfDepth + cfg.RowGap,
		max:     cfg.MaxRows,
	})
	if err != nil {
		return aisleRegion{}, err
	}

	region := aisleRegion{rows: rows, columns: columns}
	region.bottomArea = geom.NewRect(area.X, area.Y, area.Width, cfg.BottomGap)
	region.bottom = b.Add("aisle-bottom", region.bottomArea)

	rowPitch := cfg.ShelfDepth + cfg.RowGap
	lastRowTop := area.Y + cfg.BottomGap + float64(rows-1)*rowPitch + cfg.ShelfDepth
	region.top = b.Add("aisle-top", geom.NewRect(area.X, lastRowTop, area.Width, area.Top()-lastRowTop))

	for r := 0; r < rows-1; r++ {
		midY := area.Y + cfg.BottomGap + float64(r)*rowPitch + cfg.ShelfDepth
		id := b.Add(fmt.Sprintf("aisle-mid-%d", r),
			geom.NewRect(area.X, midY, area.Width, cfg.RowGap))
		region.mid = append(region.mid, id)
	}

	for r := 0; r < rows; r++ {
		rowY := area.Y + cfg.BottomGap + float64(r)*rowPitch
		for c := 0; c < columns; c++ {
			colX := area.X + float64(c)*(colPitch+cfg.ColumnGap)
			pair := geom.NewRect(colX+cfg.ShelfWidth, rowY, cfg.PairGap, cfg.ShelfDepth)
			id := b.Add(fmt.Sprintf("aisle-pair-%d-%d", r, c), pair)
			region.pairs = append(region.pairs, id)

			sink.Place(props.Placement{
				Kind: props.KindShelf,
				Area: geom.NewRect(colX, rowY, cfg.ShelfWidth, cfg.ShelfDepth),
			})
			sink.Place(props.Placement{
				Kind: props.KindShelf,
				Area: geom.NewRect(pair.Right(), rowY, cfg.ShelfWidth, cfg.ShelfDepth),
			})

			below := region.bottom
			if r > 0 {
				below = region.mid[r-1]
			}
			above := region.top
			if r < rows-1 {
				above = region.mid[r]
			}
			if err := b.Connect(geom.HSeam(pair.X, pair.Y, pair.Width), id, below); err != nil {
				return aisleRegion{}, err
			}
			if err := b.Connect(geom.HSeam(pair.X, pair.Top(), pair.Width), id, above); err != nil {
				return aisleRegion{}, err
			}
		}
	}

	return region, nil
}
