// Package textlayer converts a page's raw text items into positioned
// Elements, correcting the reported height from the item's rendering
// matrix.
package textlayer

import (
	"math"
	"sort"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/pdfmodel"
)

// Element is one glyph run positioned on the page, pre-normalization.
type Element struct {
	Bounds geometry.Rectangle
	Text   string
}

// Extract converts each TextItem into an Element. The element's height is
// derived from the transform's c, d components rather than taken from any
// reported value: the native height is known to be inflated, while
// √(c²+d²) yields the font's vertical scale directly.
func Extract(items []pdfmodel.TextItem) []Element {
	out := make([]Element, 0, len(items))
	for _, item := range items {
		c, d := item.Transform[2], item.Transform[3]
		e, f := item.Transform[4], item.Transform[5]
		height := math.Sqrt(c*c + d*d)

		out = append(out, Element{
			Bounds: geometry.NewRectangle(e, f, item.Width, height),
			Text:   item.Str,
		})
	}
	return out
}

// SortElements orders elements by y bucket (width Tolerance) then by x,
// the order that, once bound into cells, preserves top-to-bottom,
// left-to-right reading order within a multi-line cell. Callers must
// re-sort after any coordinate normalization that changes y ordering.
func SortElements(elements []Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		bi := math.Floor(elements[i].Bounds.Y / geometry.Tolerance)
		bj := math.Floor(elements[j].Bounds.Y / geometry.Tolerance)
		if bi != bj {
			return bi < bj
		}
		return elements[i].Bounds.X < elements[j].Bounds.X
	})
}
