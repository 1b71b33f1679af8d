// Package engine wires the table reconstruction components (A–H) into a
// per-page, then per-document, pipeline, and is the only layer that turns
// the core's silent shape-of-data degradation into logged diagnostics.
package engine

import (
	"go.uber.org/zap"

	"github.com/coregx/devappscraper/internal/cellbind"
	"github.com/coregx/devappscraper/internal/gridbuild"
	"github.com/coregx/devappscraper/internal/pagenorm"
	"github.com/coregx/devappscraper/internal/pdfmodel"
	"github.com/coregx/devappscraper/internal/records"
	"github.com/coregx/devappscraper/internal/tablerows"
	"github.com/coregx/devappscraper/internal/textlayer"
	"github.com/coregx/devappscraper/internal/vectorpath"
)

// Document holds the state that persists across a single PDF's pages: the
// sticky heading binding: once a heading field is bound it carries forward
// to later pages rather than being rediscovered per page.
type Document struct {
	Bindings tablerows.HeadingBinding
}

// PageResult is the outcome of processing one page.
type PageResult struct {
	Records []records.Record
	// CellCount and ElementCount summarize the encountered text elements,
	// for diagnostic logging when a page yields no rows.
	CellCount    int
	ElementCount int
}

// ProcessPage runs one page through the full reconstruction pipeline,
// updating doc's heading binding, and returns any extracted records in the
// PageResult. It never
// returns an error for shape-of-data problems; those are logged via
// logger and the page contributes zero records.
func ProcessPage(doc *Document, page pdfmodel.Page, pdfURL, commentURL, scrapeDate string, logger *zap.Logger) PageResult {
	if !pagenorm.Supported(page.Rotate) {
		logger.Warn("unsupported page rotation, extraction may yield zero rows",
			zap.Int("rotate_degrees", int(page.Rotate)))
	}

	rects := vectorpath.Extract(page.Operators)
	cells := gridbuild.Build(rects)
	for i := range cells {
		cells[i].Bounds = pagenorm.NormalizeCell(cells[i].Bounds, page.Rotate)
	}
	gridbuild.SortCells(cells) // normalization can reverse y order; re-sort

	elements := textlayer.Extract(page.TextItems)
	for i := range elements {
		elements[i].Bounds = pagenorm.NormalizeElement(elements[i].Bounds, page.Rotate)
	}
	textlayer.SortElements(elements)

	if len(cells) == 0 {
		logger.Info("no grid found on page, skipping",
			zap.Int("text_element_count", len(elements)))
		return PageResult{ElementCount: len(elements)}
	}

	cellbind.Bind(cells, elements)

	tablerows.DiscoverHeadings(&doc.Bindings, cells)
	if !doc.Bindings.Ready() {
		logger.Info("headers not found on page, skipping",
			zap.Int("cell_count", len(cells)))
		return PageResult{CellCount: len(cells), ElementCount: len(elements)}
	}

	rows := tablerows.BucketRows(cells)
	mapped := tablerows.ProjectColumns(rows, &doc.Bindings)

	recs, diagnostics := records.Extract(mapped, pdfURL, commentURL, scrapeDate)
	for _, d := range diagnostics {
		logger.Info(d)
	}

	return PageResult{Records: recs, CellCount: len(cells), ElementCount: len(elements)}
}

// ProcessDocument runs every page of source through ProcessPage in order,
// sharing one Document's heading binding across pages, and returns the
// concatenation of all extracted records.
func ProcessDocument(source pdfmodel.PageSource, pdfURL, commentURL, scrapeDate string, logger *zap.Logger) ([]records.Record, error) {
	doc := &Document{}
	var all []records.Record

	for i := 1; i <= source.NumPages(); i++ {
		page, err := source.GetPage(i)
		if err != nil {
			return all, err
		}
		result := ProcessPage(doc, page, pdfURL, commentURL, scrapeDate, logger)
		all = append(all, result.Records...)
	}

	return all, nil
}
