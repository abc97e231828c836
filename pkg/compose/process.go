package compose

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
	"github.com/dotgrid-tools/dotgrid/pkg/overlay"
	"github.com/dotgrid-tools/dotgrid/pkg/pdfinfo"
)

// Result summarizes a completed run.
type Result struct {
	InputPages  int
	OutputPages int
}

// splitCoverSides is the mask order for split mode: the right half is
// covered first, so each source page reads as a left-half page
// followed by a right-half page.
var splitCoverSides = [2]overlay.Side{overlay.SideRight, overlay.SideLeft}

// Process overlays the dot grid onto every page of the PDF at inPath
// and writes the composited document to outPath.
//
// With split disabled each source page yields one output page: the
// original content with the dot grid merged on top. With split enabled
// each source page yields two consecutive output pages, the right half
// covered by a white mask first, then the left half: the original
// content sits under the mask and the dot grid goes on top of
// everything. The border line at the page center is drawn only when
// both split and splitBorder are set.
//
// The output is written once, after all pages are composited; any
// failure aborts the run without leaving partial output.
func Process(ctx context.Context, inPath, outPath string, cfg overlay.Config, split, splitBorder bool) (res *Result, err error) {
	info, err := pdfinfo.Read(inPath)
	if err != nil {
		return nil, err
	}
	if info.PageCount == 0 {
		return nil, errors.New(errors.ErrCodeProcessing, "%s has no pages", inPath)
	}

	// gofpdi reports unparseable source pages by panicking.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = errors.New(errors.ErrCodeProcessing, "merging pages of %s: %v", inPath, r)
		}
	}()

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: info.Pages[0].Width, Ht: info.Pages[0].Height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	imp := gofpdi.NewImporter()

	outputPages := 0
	for i, size := range info.Pages {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}

		dots, derr := overlay.DotGrid(size.Width, size.Height, cfg, split && splitBorder)
		if derr != nil {
			return nil, derr
		}
		dotLayer := importBuffer(doc, imp, dots)
		srcLayer := Layer{tpl: imp.ImportPage(doc, inPath, i+1, "/MediaBox")}

		if !split {
			page := NewPage(size.Width, size.Height)
			page.Merge(srcLayer, Over)
			page.Merge(dotLayer, Over)
			page.emit(doc, imp)
			outputPages++
			continue
		}

		for _, cover := range splitCoverSides {
			mask, merr := overlay.HalfMask(size.Width, size.Height, cover)
			if merr != nil {
				return nil, merr
			}
			page := NewPage(size.Width, size.Height)
			page.Merge(importBuffer(doc, imp, mask), Over)
			page.Merge(srcLayer, Under)
			page.Merge(dotLayer, Over)
			page.emit(doc, imp)
			outputPages++
		}
	}

	if werr := doc.OutputFileAndClose(outPath); werr != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, werr, "writing %s", outPath)
	}
	return &Result{InputPages: info.PageCount, OutputPages: outputPages}, nil
}

// importBuffer registers an in-memory single-page drawable as a
// template in the output document.
func importBuffer(doc *gofpdf.Fpdf, imp *gofpdi.Importer, buf *bytes.Buffer) Layer {
	rs := io.ReadSeeker(bytes.NewReader(buf.Bytes()))
	return Layer{tpl: imp.ImportPageFromStream(doc, &rs, 1, "/MediaBox")}
}

// String implements fmt.Stringer for log output.
func (r *Result) String() string {
	return fmt.Sprintf("%d pages in, %d pages out", r.InputPages, r.OutputPages)
}
