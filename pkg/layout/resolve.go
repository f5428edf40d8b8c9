package layout

import (
	"math"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/geom"
)

// axis describes one dimension of a region grid for count resolution.
type axis struct {
	label   string  // used in error messages, e.g. "checkout lanes"
	extent  float64 // usable extent along this axis
	item    float64 // extent consumed by one item
	gap     float64 // spacing consumed per item
	minimum float64 // required minimum extent (edge buffers plus one item)
	max     int     // configured maximum count
}

// resolveCount turns a continuous extent into an integral item count:
//
//	count = min(floor((extent + eps) / (item + gap)), max)
//
// The extent is validated against the axis minimum first; a shortfall is an
// INSUFFICIENT_EXTENT configuration error. A resolved count of zero (only
// possible through the configured maximum once the minimum check passed) is
// a DEGENERATE_COUNT error. Both abort generation before any zone depending
// on this axis is created.
func resolveCount(a axis) (int, error) {
	if a.extent+geom.Epsilon < a.minimum {
		return 0, errors.New(errors.ErrCodeInsufficientExtent,
			"%s: extent %.3f below required minimum %.3f", a.label, a.extent, a.minimum)
	}

	count := int(math.Floor((a.extent + geom.Epsilon) / (a.item + a.gap)))
	if count > a.max {
		count = a.max
	}
	if count < 1 {
		return 0, errors.New(errors.ErrCodeDegenerateCount,
			"%s: resolved count is zero (maximum %d)", a.label, a.max)
	}
	return count, nil
}
