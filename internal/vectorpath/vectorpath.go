// Package vectorpath walks a page's PDF operator list and recovers the
// axis-aligned rectangles it draws: the candidate ruling lines consumed by
// internal/gridbuild.
package vectorpath

import (
	"math"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/pdfmodel"
)

// Extract walks ops and returns every rectangle committed by a fill or
// eoFill operator, in page coordinates (post-transform, pre-normalization).
//
// The walk tolerates malformed sequences: an unmatched restore, a fill with
// no buffered rectangle, or a construct-path with no rectangle sub-op simply
// contribute nothing, rather than aborting extraction.
func Extract(ops pdfmodel.OperatorList) []geometry.Rectangle {
	current := pdfmodel.Identity
	var stack []pdfmodel.Matrix
	var buffered *geometry.Rectangle
	var out []geometry.Rectangle

	for _, op := range ops.Operators {
		switch op.Code {
		case pdfmodel.OpSave:
			stack = append(stack, current)

		case pdfmodel.OpRestore:
			if len(stack) == 0 {
				continue
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

		case pdfmodel.OpTransform:
			m, ok := op.Args.([6]float64)
			if !ok {
				continue
			}
			current = pdfmodel.Multiply(pdfmodel.Matrix{
				A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5],
			}, current)

		case pdfmodel.OpConstructPath:
			segs, ok := op.Args.([]pdfmodel.PathSegment)
			if !ok {
				continue
			}
			if r := constructRectangle(current, segs); r != nil {
				buffered = r
			}

		case pdfmodel.OpFill, pdfmodel.OpEOFill:
			if buffered != nil {
				out = append(out, *buffered)
				buffered = nil
			}
		}
	}

	return out
}

// constructRectangle walks the sub-ops of a single constructPath call and
// returns the last rectangle sub-op found, transformed by m, or nil if none
// is present. moveTo/lineTo sub-ops carry their own coordinates and are
// skipped; they do not produce a rectangle.
func constructRectangle(m pdfmodel.Matrix, segs []pdfmodel.PathSegment) *geometry.Rectangle {
	var last *geometry.Rectangle

	for _, seg := range segs {
		switch seg.Op {
		case pdfmodel.PathRectangle:
			if len(seg.Coords) != 4 {
				continue
			}
			x, y, w, h := seg.Coords[0], seg.Coords[1], seg.Coords[2], seg.Coords[3]
			x0, y0 := m.Apply(x, y)
			x1, y1 := m.Apply(x+w, y+h)
			r := geometry.NewRectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
			last = &r

		case pdfmodel.PathMoveTo, pdfmodel.PathLineTo:
			// Sub-op coordinates are consumed but only the rectangle
			// sub-op yields a candidate ruling.
			continue
		}
	}

	return last
}
