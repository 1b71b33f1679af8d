package gridbuild

import (
	"testing"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleCellGrid returns the four thin rectangles bounding a 100×20 cell
// with top-left corner at (0, 0).
func singleCellGrid() []geometry.Rectangle {
	return []geometry.Rectangle{
		geometry.NewRectangle(0, 20, 100, 1),   // top ruling
		geometry.NewRectangle(0, 0, 100, 1),    // bottom ruling
		geometry.NewRectangle(0, 0, 1, 20),     // left ruling
		geometry.NewRectangle(100, 0, 1, 20),   // right ruling
	}
}

func TestBuild_SingleCell(t *testing.T) {
	cells := Build(singleCellGrid())
	require.Len(t, cells, 1)
	assert.InDelta(t, 0, cells[0].Bounds.X, 0.01)
	assert.InDelta(t, 0, cells[0].Bounds.Y, 0.01)
	assert.InDelta(t, 100, cells[0].Bounds.Width, 0.01)
	assert.InDelta(t, 20, cells[0].Bounds.Height, 0.01)
}

func TestBuild_StrayDecorationsRejected(t *testing.T) {
	rects := singleCellGrid()
	for i := 0; i < 5; i++ {
		// width 4, height 2: thin but shorter than the 10-unit length
		// threshold as a horizontal, and wider than Tolerance as a
		// vertical, so it never enters the point set.
		rects = append(rects, geometry.NewRectangle(float64(200+i*10), 500, 4, 2))
	}

	cells := Build(rects)
	require.Len(t, cells, 1)
	assert.InDelta(t, 100, cells[0].Bounds.Width, 0.01)
}

func TestBuild_TwoByTwoGrid(t *testing.T) {
	// A 2x2 grid: verticals at x=0,50,100; horizontals at y=0,10,20.
	var rects []geometry.Rectangle
	for _, x := range []float64{0, 50, 100} {
		rects = append(rects, geometry.NewRectangle(x, 0, 1, 20))
	}
	for _, y := range []float64{0, 10, 20} {
		rects = append(rects, geometry.NewRectangle(0, y, 100, 1))
	}

	cells := Build(rects)
	require.Len(t, cells, 4)
	for _, c := range cells {
		assert.InDelta(t, 50, c.Bounds.Width, 0.01)
		assert.InDelta(t, 10, c.Bounds.Height, 0.01)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil))
}

func TestBuild_OnlyHorizontalLinesProducesNoCells(t *testing.T) {
	rects := []geometry.Rectangle{
		geometry.NewRectangle(0, 0, 100, 1),
		geometry.NewRectangle(0, 20, 100, 1),
	}
	assert.Empty(t, Build(rects))
}

func TestBuild_PointDeduplicationWithinTolerance(t *testing.T) {
	// Two verticals at x=0 and x=0.5 (within Tolerance of each other)
	// should collapse to a single point per row, so no sliver cell forms
	// between them: the vertical at x=50 and the horizontals' right
	// endpoints at x=100 leave exactly two cells.
	rects := []geometry.Rectangle{
		geometry.NewRectangle(0, 0, 1, 20),
		geometry.NewRectangle(0.5, 0, 1, 20),
		geometry.NewRectangle(50, 0, 1, 20),
		geometry.NewRectangle(0, 0, 100, 1),
		geometry.NewRectangle(0, 20, 100, 1),
	}
	cells := Build(rects)
	require.Len(t, cells, 2)
}

func TestBuild_CellsSortedByRowThenColumn(t *testing.T) {
	var rects []geometry.Rectangle
	for _, x := range []float64{0, 50, 100} {
		rects = append(rects, geometry.NewRectangle(x, 0, 1, 20))
	}
	for _, y := range []float64{0, 10, 20} {
		rects = append(rects, geometry.NewRectangle(0, y, 100, 1))
	}

	cells := Build(rects)
	require.Len(t, cells, 4)
	for i := 1; i < len(cells); i++ {
		prevBucket := cells[i-1].Bounds.Y
		currBucket := cells[i].Bounds.Y
		assert.True(t, currBucket >= prevBucket)
	}
}
