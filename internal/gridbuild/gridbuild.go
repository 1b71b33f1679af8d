// Package gridbuild reconstructs a table's logical grid (its cells) from
// the candidate ruling rectangles vectorpath extracts from a page. The grid
// is derived as the transitive closure of point alignment rather than by
// assuming a rectangular matrix, so minor coordinate noise and stray
// rectangles are tolerated.
package gridbuild

import (
	"math"
	"sort"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/textlayer"
)

// Cell is one cell of the reconstructed grid. Elements is populated later
// by internal/cellbind.
type Cell struct {
	Bounds   geometry.Rectangle
	Elements []textlayer.Element
}

// Build classifies rects into rulings, derives the grid's point set, and
// emits cells in sorted order (y bucket, then x). A page with no horizontal
// or no vertical rulings yields no cells.
func Build(rects []geometry.Rectangle) []Cell {
	horiz, vert := classify(rects)
	if len(horiz) == 0 || len(vert) == 0 {
		return nil
	}
	sort.Slice(vert, func(i, j int) bool { return vert[i].Start.X < vert[j].Start.X })
	sort.Slice(horiz, func(i, j int) bool { return horiz[i].Start.Y < horiz[j].Start.Y })

	points := seedPoints(horiz, vert)
	points = addIntersections(points, horiz, vert)

	cells := buildCells(points)
	SortCells(cells)
	return cells
}

// classify splits rectangles into horizontal and vertical ruling lines,
// represented as a segment along the rectangle's origin edge (y = r.Y for a
// horizontal, x = r.X for a vertical), discarding anything that is neither
// thin-horizontal nor thin-vertical.
func classify(rects []geometry.Rectangle) (horiz, vert []geometry.Line) {
	for _, r := range rects {
		switch {
		case r.IsThinHorizontal():
			horiz = append(horiz, geometry.NewLine(geometry.NewPoint(r.X, r.Y), geometry.NewPoint(r.Right(), r.Y)))
		case r.IsThinVertical():
			vert = append(vert, geometry.NewLine(geometry.NewPoint(r.X, r.Y), geometry.NewPoint(r.X, r.Top())))
		}
	}
	return horiz, vert
}

// addPoint appends p to points unless an existing point already lies within
// Tolerance, via a linear scan.
func addPoint(points []geometry.Point, p geometry.Point) []geometry.Point {
	for _, q := range points {
		if q.WithinTolerance(p) {
			return points
		}
	}
	return append(points, p)
}

func seedPoints(horiz, vert []geometry.Line) []geometry.Point {
	var points []geometry.Point
	for _, h := range horiz {
		points = addPoint(points, h.Start)
		points = addPoint(points, h.End)
	}
	for _, v := range vert {
		points = addPoint(points, v.Start)
		points = addPoint(points, v.End)
	}
	return points
}

func addIntersections(points []geometry.Point, horiz, vert []geometry.Line) []geometry.Point {
	for _, h := range horiz {
		for _, v := range vert {
			if p, ok := geometry.IntersectLines(h, v); ok {
				points = addPoint(points, p)
			}
		}
	}
	return points
}

// buildCells emits, for every point, a cell bounded by its nearest
// right-hand and downward neighbours, skipping points missing either.
func buildCells(points []geometry.Point) []Cell {
	cells := make([]Cell, 0, len(points))
	for _, p := range points {
		right, hasRight := nearestRight(points, p)
		below, hasBelow := nearestBelow(points, p)
		if !hasRight || !hasBelow {
			continue
		}
		cells = append(cells, Cell{
			Bounds: geometry.NewRectangle(p.X, p.Y, right.X-p.X, below.Y-p.Y),
		})
	}
	return cells
}

// nearestRight finds the point with minimum x greater than p.x among
// points whose y lies within Tolerance of p.y.
func nearestRight(points []geometry.Point, p geometry.Point) (geometry.Point, bool) {
	var best geometry.Point
	found := false
	for _, q := range points {
		if q.X <= p.X || math.Abs(q.Y-p.Y) >= geometry.Tolerance {
			continue
		}
		if !found || q.X < best.X {
			best = q
			found = true
		}
	}
	return best, found
}

// nearestBelow finds the point with minimum y greater than p.y among
// points whose x lies within Tolerance of p.x.
func nearestBelow(points []geometry.Point, p geometry.Point) (geometry.Point, bool) {
	var best geometry.Point
	found := false
	for _, q := range points {
		if q.Y <= p.Y || math.Abs(q.X-p.X) >= geometry.Tolerance {
			continue
		}
		if !found || q.Y < best.Y {
			best = q
			found = true
		}
	}
	return best, found
}

// SortCells orders cells by y bucket (width Tolerance) then by x. Build
// calls this once on construction; callers that mutate Bounds afterward
// (e.g. pagenorm's coordinate normalization, which can reverse y order)
// must call it again before relying on the sort.
func SortCells(cells []Cell) {
	sort.SliceStable(cells, func(i, j int) bool {
		bi := math.Floor(cells[i].Bounds.Y / geometry.Tolerance)
		bj := math.Floor(cells[j].Bounds.Y / geometry.Tolerance)
		if bi != bj {
			return bi < bj
		}
		return cells[i].Bounds.X < cells[j].Bounds.X
	})
}
