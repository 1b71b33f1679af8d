package cellbind

import (
	"testing"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/gridbuild"
	"github.com/coregx/devappscraper/internal/textlayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_ElementInsideCell(t *testing.T) {
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 100, 20)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(10, 5, 60, 10), Text: "690/006/15"},
	}

	Bind(cells, elements)
	require.Len(t, cells[0].Elements, 1)
	assert.Equal(t, "690/006/15", cells[0].Elements[0].Text)
}

func TestBind_ElementOutsideAnyCellDiscarded(t *testing.T) {
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 100, 20)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(500, 500, 10, 10), Text: "stray"},
	}

	Bind(cells, elements)
	assert.Empty(t, cells[0].Elements)
}

func TestBind_MajorityOverlapWins(t *testing.T) {
	// Element straddling the boundary between two cells, 75% in the first.
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 50, 20)},
		{Bounds: geometry.NewRectangle(50, 0, 50, 20)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(20, 0, 40, 20), Text: "straddle"}, // 30 in cell0, 10 in cell1 -> 75% cell0
	}

	Bind(cells, elements)
	assert.Len(t, cells[0].Elements, 1)
	assert.Empty(t, cells[1].Elements)
}

func TestBind_ExactlyHalfOverlapDiscarded(t *testing.T) {
	// Element with exactly 50% overlap must NOT bind (threshold is > 50%).
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 50, 20)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(25, 0, 50, 20), Text: "half"}, // 25 of 50 width inside
	}

	Bind(cells, elements)
	assert.Empty(t, cells[0].Elements)
}

func TestBind_PreservesElementOrderWithinCell(t *testing.T) {
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 100, 40)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(0, 0, 50, 10), Text: "first"},
		{Bounds: geometry.NewRectangle(0, 20, 50, 10), Text: "second"},
	}

	Bind(cells, elements)
	require.Len(t, cells[0].Elements, 2)
	assert.Equal(t, "first", cells[0].Elements[0].Text)
	assert.Equal(t, "second", cells[0].Elements[1].Text)
}

func TestBind_FirstMatchingCellWinsOnAmbiguity(t *testing.T) {
	// Two overlapping cells (near-duplicate coordinate noise); element
	// should bind to the first in sort order that clears the threshold.
	cells := []gridbuild.Cell{
		{Bounds: geometry.NewRectangle(0, 0, 100, 20)},
		{Bounds: geometry.NewRectangle(0, 0, 100, 20)},
	}
	elements := []textlayer.Element{
		{Bounds: geometry.NewRectangle(10, 5, 20, 10), Text: "dup"},
	}

	Bind(cells, elements)
	assert.Len(t, cells[0].Elements, 1)
	assert.Empty(t, cells[1].Elements)
}
