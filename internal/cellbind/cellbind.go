// Package cellbind assigns each text element to the grid cell that owns
// it (the cell containing more than half of the element's area).
package cellbind

import (
	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/gridbuild"
	"github.com/coregx/devappscraper/internal/textlayer"
)

// ownershipThreshold is the minimum percentage of an element's area that
// must fall within a cell for that cell to own the element.
const ownershipThreshold = 50.0

// Bind assigns each element to the first cell, in cells' existing sort
// order, satisfying percentOfAInB(element, cell) > 50%. Elements matching
// no cell are discarded. cells is mutated in place; its Elements field
// accumulates in the input elements' order, which preserves reading order
// for multi-line cells provided elements were already sorted by y bucket
// then x.
func Bind(cells []gridbuild.Cell, elements []textlayer.Element) {
	for _, el := range elements {
		for i := range cells {
			if geometry.PercentOfAInB(el.Bounds, cells[i].Bounds) > ownershipThreshold {
				cells[i].Elements = append(cells[i].Elements, el)
				break
			}
		}
	}
}
