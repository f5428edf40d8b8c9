// Package geom provides the axis-aligned rectangle primitive shared by the
// layout builders, the zone graph, and the renderers.
//
// All rectangles live in a single 2-D coordinate space with Y increasing
// upward. Comparisons against configured measurements use [Epsilon] to absorb
// floating-point error accumulated while summing item sizes and gaps.
package geom

// Epsilon is the tolerance applied wherever a sum of measurements is compared
// against a configured bound. Layout math adds many small floats together, so
// exact comparisons would reject configurations that are valid on paper.
const Epsilon = 1e-3

// Rect is an axis-aligned rectangle. X/Y is the bottom-left corner; Y grows
// upward. A Rect with zero Width or zero Height is degenerate and represents
// a line segment (used for boundary crossings between zones).
type Rect struct {
	X      float64 `json:"x" toml:"x" bson:"x"`
	Y      float64 `json:"y" toml:"y" bson:"y"`
	Width  float64 `json:"width" toml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" bson:"height"`
}

// NewRect constructs a rectangle from its bottom-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Area returns Width * Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// IsDegenerate reports whether the rectangle has zero width or height and is
// therefore a line segment rather than an area.
func (r Rect) IsDegenerate() bool { return r.Width == 0 || r.Height == 0 }

// IsValid reports whether both dimensions are non-negative.
func (r Rect) IsValid() bool { return r.Width >= 0 && r.Height >= 0 }

// Contains reports whether o lies entirely inside r, within Epsilon.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-Epsilon &&
		o.Y >= r.Y-Epsilon &&
		o.Right() <= r.Right()+Epsilon &&
		o.Top() <= r.Top()+Epsilon
}

// Overlaps reports whether r and o share interior area beyond Epsilon.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X+Epsilon < o.Right() &&
		o.X+Epsilon < r.Right() &&
		r.Y+Epsilon < o.Top() &&
		o.Y+Epsilon < r.Top()
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// HSeam returns a zero-height rectangle spanning [x, x+width] at height y.
// Boundaries between vertically stacked zones are horizontal seams.
func HSeam(x, y, width float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: 0}
}

// VSeam returns a zero-width rectangle spanning [y, y+height] at x.
// Boundaries between horizontally adjacent zones are vertical seams.
func VSeam(x, y, height float64) Rect {
	return Rect{X: x, Y: y, Width: 0, Height: height}
}
