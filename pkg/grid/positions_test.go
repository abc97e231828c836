package grid

import (
	"math"
	"testing"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestAxisPositions(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		spacing   float64
		want      []float64
	}{
		{
			name:      "exact multiple has zero margin",
			dimension: 100,
			spacing:   10,
			want:      []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		{
			name:      "remainder split into equal margins",
			dimension: 95,
			spacing:   10,
			want:      []float64{2.5, 12.5, 22.5, 32.5, 42.5, 52.5, 62.5, 72.5, 82.5, 92.5},
		},
		{
			name:      "dimension smaller than spacing yields one centered dot",
			dimension: 5,
			spacing:   10,
			want:      []float64{2.5},
		},
		{
			name:      "dimension equal to spacing",
			dimension: 10,
			spacing:   10,
			want:      []float64{0, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AxisPositions(tt.dimension, tt.spacing)
			if err != nil {
				t.Fatalf("AxisPositions(%g, %g) error: %v", tt.dimension, tt.spacing, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("AxisPositions(%g, %g) = %v, want %v", tt.dimension, tt.spacing, got, tt.want)
			}
			for i := range got {
				if !almostEqual(got[i], tt.want[i]) {
					t.Errorf("AxisPositions(%g, %g)[%d] = %v, want %v", tt.dimension, tt.spacing, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAxisPositionsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		spacing   float64
	}{
		{name: "zero dimension", dimension: 0, spacing: 10},
		{name: "negative dimension", dimension: -50, spacing: 10},
		{name: "zero spacing", dimension: 100, spacing: 0},
		{name: "negative spacing", dimension: 100, spacing: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AxisPositions(tt.dimension, tt.spacing)
			if err == nil {
				t.Fatalf("AxisPositions(%g, %g) = %v, want error", tt.dimension, tt.spacing, got)
			}
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("AxisPositions(%g, %g) error code = %q, want %q",
					tt.dimension, tt.spacing, errors.GetCode(err), errors.ErrCodeInvalidParameter)
			}
			if got != nil {
				t.Errorf("AxisPositions(%g, %g) returned positions alongside error", tt.dimension, tt.spacing)
			}
		})
	}
}

// Properties that must hold for any positive dimension and spacing:
// the sequence is non-empty and strictly ascending, consecutive
// offsets differ by exactly the spacing, the span equals
// floor(dimension/spacing)*spacing and both end margins are equal.
func TestAxisPositionsProperties(t *testing.T) {
	dims := []float64{0.1, 1, 5, 9.9, 10, 29.7, 95, 100, 210, 297, 841.89}
	spacings := []float64{0.25, 1, 2.5, 7, 10, 50}

	for _, dim := range dims {
		for _, spacing := range spacings {
			got, err := AxisPositions(dim, spacing)
			if err != nil {
				t.Fatalf("AxisPositions(%g, %g) error: %v", dim, spacing, err)
			}
			if len(got) == 0 {
				t.Fatalf("AxisPositions(%g, %g) returned empty sequence", dim, spacing)
			}
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Errorf("AxisPositions(%g, %g) not strictly ascending at %d: %v", dim, spacing, i, got)
				}
				if !almostEqual(got[i]-got[i-1], spacing) {
					t.Errorf("AxisPositions(%g, %g) interval %d = %g, want %g", dim, spacing, i, got[i]-got[i-1], spacing)
				}
			}

			intervals := math.Floor(dim / spacing)
			if n := len(got); float64(n-1) != intervals {
				t.Errorf("AxisPositions(%g, %g) has %d intervals, want %g", dim, spacing, n-1, intervals)
			}
			span := got[len(got)-1] - got[0]
			if !almostEqual(span, intervals*spacing) {
				t.Errorf("AxisPositions(%g, %g) span = %g, want %g", dim, spacing, span, intervals*spacing)
			}
			// Symmetry: first == dimension - last.
			if !almostEqual(got[0], dim-got[len(got)-1]) {
				t.Errorf("AxisPositions(%g, %g) margins differ: first=%g, dimension-last=%g",
					dim, spacing, got[0], dim-got[len(got)-1])
			}
		}
	}
}
