package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/geom"
)

// Config is the complete set of measurements driving layout generation.
// It is provided programmatically or loaded from a TOML file with
// [LoadConfig]. Validation never corrects a value silently: a config either
// passes [Config.Validate] or generation refuses to start.
type Config struct {
	// Store is the outer floor rectangle. Every other region must lie
	// inside it.
	Store geom.Rect `toml:"store" json:"store"`

	// Staff is the staff-only area above the aisles. It is never
	// represented as a zone; shoppers cannot enter it.
	Staff geom.Rect `toml:"staff" json:"staff"`

	Checkout CheckoutConfig `toml:"checkout" json:"checkout"`
	Aisles   AisleConfig    `toml:"aisles" json:"aisles"`

	// Entrances pairs each entrance door with its lobby, by list position.
	// Only the first pair is wired by the stitcher.
	Entrances []Entrance `toml:"entrances" json:"entrances"`
}

// CheckoutConfig describes the checkout block: a single row of checkout
// units, each with a walkable lane immediately to its left.
type CheckoutConfig struct {
	Area geom.Rect `toml:"area" json:"area"`

	// UnitWidth and UnitDepth are the footprint of one checkout prop.
	UnitWidth float64 `toml:"unit_width" json:"unit_width"`
	UnitDepth float64 `toml:"unit_depth" json:"unit_depth"`

	// LaneGap is the spacing between units; the lane zone itself has this
	// width.
	LaneGap float64 `toml:"lane_gap" json:"lane_gap"`

	// BottomGap is the buffer height below the lane row. TopGap is the
	// minimum clearance required above it; the actual top buffer takes all
	// remaining height.
	BottomGap float64 `toml:"bottom_gap" json:"bottom_gap"`
	TopGap    float64 `toml:"top_gap" json:"top_gap"`

	MaxLanes int `toml:"max_lanes" json:"max_lanes"`
}

// AisleConfig describes the aisle block: a grid of aisle pairs, each pair
// being two facing shelves with a walkable gap between them.
type AisleConfig struct {
	Area geom.Rect `toml:"area" json:"area"`

	// ShelfWidth and ShelfDepth are the footprint of one shelf prop.
	ShelfWidth float64 `toml:"shelf_width" json:"shelf_width"`
	ShelfDepth float64 `toml:"shelf_depth" json:"shelf_depth"`

	// PairGap is the walkable gap between the two facing shelves of a pair.
	PairGap float64 `toml:"pair_gap" json:"pair_gap"`

	// ColumnGap separates neighboring pairs within a row. RowGap separates
	// consecutive rows and is the height of each mid buffer.
	ColumnGap float64 `toml:"column_gap" json:"column_gap"`
	RowGap    float64 `toml:"row_gap" json:"row_gap"`

	// BottomGap is the buffer height below the first row. TopGap is the
	// minimum clearance above the last row; the top buffer takes all
	// remaining height.
	BottomGap float64 `toml:"bottom_gap" json:"bottom_gap"`
	TopGap    float64 `toml:"top_gap" json:"top_gap"`

	MaxRows    int `toml:"max_rows" json:"max_rows"`
	MaxColumns int `toml:"max_columns" json:"max_columns"`
}

// Entrance pairs a door rectangle with the lobby just inside it.
type Entrance struct {
	// Door is the traversable opening in the store wall. It may be
	// degenerate (a line segment).
	Door geom.Rect `toml:"door" json:"door"`

	// Lobby is the zone just inside the door.
	Lobby geom.Rect `toml:"lobby" json:"lobby"`

	// Facing names the store wall the door sits on; the exterior zone is
	// projected outward along this wall's normal.
	Facing Facing `toml:"facing" json:"facing"`
}

// Facing identifies a store wall.
type Facing string

const (
	FacingLeft   Facing = "left"
	FacingRight  Facing = "right"
	FacingTop    Facing = "top"
	FacingBottom Facing = "bottom"
)

func (f Facing) valid() bool {
	switch f {
	case FacingLeft, FacingRight, FacingTop, FacingBottom:
		return true
	}
	return false
}

// LoadConfig reads and decodes a TOML layout config. The result is not yet
// validated; [Build] validates before generating.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config %s", path)
	}
	return cfg, nil
}

// Validate checks the structural invariants of the config: positive
// measurements, region containment, and pairwise disjoint sub-regions.
// Extent sufficiency for lane/row/column counts is checked later, per
// region, by the dimension resolver.
func (c Config) Validate() error {
	if c.Store.Width <= 0 || c.Store.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "store must have positive size, got %.3f x %.3f", c.Store.Width, c.Store.Height)
	}

	if err := c.Checkout.validate(); err != nil {
		return err
	}
	if err := c.Aisles.validate(); err != nil {
		return err
	}

	if len(c.Entrances) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one entrance/lobby pair is required")
	}
	for i, e := range c.Entrances {
		if err := e.validate(c.Store, i); err != nil {
			return err
		}
	}

	// Containment: every sub-region inside the store.
	regions := c.subRegions()
	for _, r := range regions {
		if !c.Store.Contains(r.rect) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s extends outside the store", r.name)
		}
	}

	// Disjointness: sub-regions must not share interior area.
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].rect.Overlaps(regions[j].rect) {
				return errors.New(errors.ErrCodeInvalidConfig, "%s overlaps %s", regions[i].name, regions[j].name)
			}
		}
	}

	return nil
}

type namedRect struct {
	name string
	rect geom.Rect
}

func (c Config) subRegions() []namedRect {
	regions := []namedRect{
		{"checkout area", c.Checkout.Area},
		{"aisle area", c.Aisles.Area},
	}
	if c.Staff.Area() > 0 {
		regions = append(regions, namedRect{"staff area", c.Staff})
	}
	for i, e := range c.Entrances {
		regions = append(regions, namedRect{fmt.Sprintf("lobby %d", i), e.Lobby})
	}
	return regions
}

func (c CheckoutConfig) validate() error {
	if c.UnitWidth <= 0 || c.UnitDepth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "checkout unit size must be positive")
	}
	if c.LaneGap <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "checkout lane gap must be positive")
	}
	if c.BottomGap < 0 || c.TopGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "checkout edge gaps must not be negative")
	}
	return nil
}

func (c AisleConfig) validate() error {
	if c.ShelfWidth <= 0 || c.ShelfDepth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "shelf size must be positive")
	}
	if c.PairGap <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "aisle pair gap must be positive")
	}
	if c.ColumnGap < 0 || c.RowGap < 0 || c.BottomGap < 0 || c.TopGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "aisle gaps must not be negative")
	}
	return nil
}

func (e Entrance) validate(store geom.Rect, i int) error {
	if !e.Facing.valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "entrance %d: facing must be left, right, top, or bottom, got %q", i, e.Facing)
	}
	if e.Lobby.Width <= 0 || e.Lobby.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "entrance %d: lobby must have positive size", i)
	}
	if !e.Door.IsValid() {
		return errors.New(errors.ErrCodeInvalidConfig, "entrance %d: door rectangle is malformed", i)
	}
	if !onWall(e.Door, store, e.Facing) {
		return errors.New(errors.ErrCodeInvalidConfig, "entrance %d: door does not lie on the %s store wall", i, e.Facing)
	}
	return nil
}

// onWall reports whether the door rectangle sits on the named store wall,
// within tolerance.
func onWall(door, store geom.Rect, f Facing) bool {
	const eps = geom.Epsilon
	switch f {
	case FacingLeft:
		return door.X >= store.X-eps && door.X <= store.X+eps
	case FacingRight:
		return door.Right() >= store.Right()-eps && door.Right() <= store.Right()+eps
	case FacingBottom:
		return door.Y >= store.Y-eps && door.Y <= store.Y+eps
	case FacingTop:
		return door.Top() >= store.Top()-eps && door.Top() <= store.Top()+eps
	}
	return false
}
