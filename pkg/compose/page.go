// Package compose merges overlay drawables onto the pages of a source
// PDF and writes the result.
//
// Compositing is modeled as ordered layers on an output page: a layer
// is an imported single-page template, and Merge places a layer either
// under or over the existing stack. The split-mode composite (white
// half mask, original content under it, dot grid on top) is expressed
// with two Merge calls instead of implicit stacking.
package compose

import (
	"github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"
)

// Order selects where a merged layer lands relative to the stack.
type Order int

const (
	// Under inserts the layer below all existing layers.
	Under Order = iota
	// Over places the layer on top of all existing layers.
	Over
)

// Layer is one single-page drawable registered as a template in the
// output document.
type Layer struct {
	tpl int
}

// Page is an output page under construction: a size plus an ordered
// layer stack, bottom first.
type Page struct {
	width  float64
	height float64
	layers []Layer
}

// NewPage creates an empty output page of the given size in points.
func NewPage(width, height float64) *Page {
	return &Page{width: width, height: height}
}

// Merge adds a layer to the page with explicit z-ordering.
func (p *Page) Merge(l Layer, o Order) {
	if o == Under {
		p.layers = append([]Layer{l}, p.layers...)
		return
	}
	p.layers = append(p.layers, l)
}

// emit appends the page to the output document, drawing its layers
// bottom to top at full page size.
func (p *Page) emit(doc *gofpdf.Fpdf, imp *gofpdi.Importer) {
	doc.AddPageFormat("P", gofpdf.SizeType{Wd: p.width, Ht: p.height})
	for _, l := range p.layers {
		imp.UseImportedTemplate(doc, l.tpl, 0, 0, p.width, p.height)
	}
}
