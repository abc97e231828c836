package overlay

import (
	"bytes"

	"github.com/phpdave11/gofpdf"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
	"github.com/dotgrid-tools/dotgrid/pkg/grid"
)

// Side identifies one horizontal half of a page.
type Side string

// Halves of a page along the horizontal axis.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Opposite returns the other half.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// DotGrid renders a centered dot matrix for a page of the given size
// (in points) into a standalone single-page PDF.
//
// Dot positions are computed in millimeters from the page size and
// drawn as filled circles of radius cfg.RadiusMM() in cfg.ColorHex,
// with fill and stroke alpha cfg.Opacity. When drawBorder is set and
// the vertical position set is non-empty, a vertical line is drawn at
// the horizontal center spanning from the first to the last row, with
// stroke width equal to the dot diameter.
//
// Invalid geometry (non-positive width, height, spacing or diameter),
// an opacity outside [0, 1] or a malformed color are rejected; nothing
// is coerced here.
func DotGrid(width, height float64, cfg Config, drawBorder bool) (*bytes.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "page size must be positive, got %gx%g pt", width, height)
	}
	if cfg.DiameterMM <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "dot diameter must be positive, got %g mm", cfg.DiameterMM)
	}
	if cfg.Opacity < 0 || cfg.Opacity > 1 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "opacity must be within [0.0, 1.0], got %g", cfg.Opacity)
	}
	r, g, b, err := cfg.RGB()
	if err != nil {
		return nil, err
	}

	xs, err := grid.AxisPositions(grid.Millimeters(width), cfg.SpacingMM)
	if err != nil {
		return nil, err
	}
	ys, err := grid.AxisPositions(grid.Millimeters(height), cfg.SpacingMM)
	if err != nil {
		return nil, err
	}

	pdf := newCanvas(width, height)
	pdf.SetFillColor(channel(r), channel(g), channel(b))
	pdf.SetDrawColor(channel(r), channel(g), channel(b))
	pdf.SetAlpha(cfg.Opacity, "Normal")

	// gofpdf's origin is top-left with y growing downward, so computed
	// offsets are flipped against the page height.
	radius := grid.Points(cfg.RadiusMM())
	for _, x := range xs {
		for _, y := range ys {
			pdf.Circle(grid.Points(x), height-grid.Points(y), radius, "F")
		}
	}

	if drawBorder && len(ys) > 0 {
		pdf.SetLineWidth(grid.Points(cfg.DiameterMM))
		first := height - grid.Points(ys[0])
		last := height - grid.Points(ys[len(ys)-1])
		pdf.Line(width/2, first, width/2, last)
	}

	return output(pdf)
}

// HalfMask renders a solid white rectangle covering the given half of
// a width x height (points) page into a standalone single-page PDF.
// The rectangle has no stroke; composited under original content it
// hides the covered half and leaves the other half visible.
func HalfMask(width, height float64, side Side) (*bytes.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "page size must be positive, got %gx%g pt", width, height)
	}
	if side != SideLeft && side != SideRight {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "side must be %q or %q, got %q", SideLeft, SideRight, side)
	}

	pdf := newCanvas(width, height)
	pdf.SetFillColor(255, 255, 255)

	half := width / 2
	x := 0.0
	if side == SideRight {
		x = half
	}
	pdf.Rect(x, 0, half, height, "F")

	return output(pdf)
}

// newCanvas creates a bare single-page canvas in point units.
func newCanvas(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	return pdf
}

// output serializes the canvas into an in-memory buffer.
func output(pdf *gofpdf.Fpdf) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProcessing, err, "serializing overlay")
	}
	return &buf, nil
}

// channel converts a 0-1 color channel to gofpdf's 0-255 scale.
func channel(v float64) int {
	return int(v*255 + 0.5)
}
