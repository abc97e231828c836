// Package pdfinfo reads structural information from PDF files: page
// count and per-page media box dimensions. Page content itself is
// never inspected.
package pdfinfo

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

// PageSize is a page's media box extent in points.
type PageSize struct {
	Width  float64
	Height float64
}

// Info describes the structure of a PDF document.
type Info struct {
	PageCount int
	Pages     []PageSize // media box dimensions in page order
}

// Read opens a PDF file and returns its page count and per-page
// dimensions. A missing file yields FILE_NOT_FOUND; anything pdfcpu
// cannot parse yields PROCESSING_ERROR.
func Read(path string) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "input file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeProcessing, err, "accessing %s", path)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProcessing, err, "reading page dimensions of %s", path)
	}

	info := &Info{PageCount: len(dims), Pages: make([]PageSize, len(dims))}
	for i, d := range dims {
		info.Pages[i] = PageSize{Width: d.Width, Height: d.Height}
	}
	return info, nil
}

// Validate runs pdfcpu's validation against the file.
func Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return errors.Wrap(errors.ErrCodeProcessing, err, "validating %s", path)
	}
	return nil
}
