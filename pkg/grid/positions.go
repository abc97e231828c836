// Package grid computes centered dot grid layouts for rectangular pages.
//
// All layout math is done in millimeters; conversion helpers translate
// between millimeters and PDF points (1/72 inch). The package is pure:
// no I/O, no state.
package grid

import (
	"math"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

// AxisPositions returns the offsets of dot centers along one axis.
//
// Positions are spaced exactly spacing apart and centered within
// dimension: the number of intervals is floor(dimension/spacing) and
// the first and last positions sit at equal margins from both ends.
// The result always contains at least one position; when dimension is
// smaller than spacing a single centered offset is returned.
//
// Both arguments must be positive and share the same unit.
func AxisPositions(dimension, spacing float64) ([]float64, error) {
	if dimension <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "dimension must be positive, got %g", dimension)
	}
	if spacing <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "spacing must be positive, got %g", spacing)
	}

	intervals := int(math.Floor(dimension / spacing))
	span := float64(intervals) * spacing
	margin := (dimension - span) / 2

	positions := make([]float64, intervals+1)
	for i := range positions {
		positions[i] = margin + float64(i)*spacing
	}
	return positions, nil
}
