// Package pdmtest builds synthetic pdfmodel.Page fixtures for tests, so
// component tests can exercise the engine without a real PDF decoder.
package pdmtest

import "github.com/coregx/devappscraper/internal/pdfmodel"

// Builder accumulates operators for one page.
type Builder struct {
	ops   []pdfmodel.Operator
	items []pdfmodel.TextItem
	rot   pdfmodel.Rotation
	w, h  float64
}

// NewBuilder creates a Builder for a page of the given media box size.
func NewBuilder(width, height float64) *Builder {
	return &Builder{w: width, h: height}
}

// Rotate sets the page's declared rotation.
func (b *Builder) Rotate(r pdfmodel.Rotation) *Builder {
	b.rot = r
	return b
}

// Save appends an OpSave.
func (b *Builder) Save() *Builder {
	b.ops = append(b.ops, pdfmodel.Operator{Code: pdfmodel.OpSave})
	return b
}

// Restore appends an OpRestore.
func (b *Builder) Restore() *Builder {
	b.ops = append(b.ops, pdfmodel.Operator{Code: pdfmodel.OpRestore})
	return b
}

// Transform appends an OpTransform concatenating m.
func (b *Builder) Transform(m pdfmodel.Matrix) *Builder {
	b.ops = append(b.ops, pdfmodel.Operator{
		Code: pdfmodel.OpTransform,
		Args: [6]float64{m.A, m.B, m.C, m.D, m.E, m.F},
	})
	return b
}

// Rect appends a construct-path of a single rectangle followed by a fill,
// the common case of a ruling line or cell-fill drawn as a filled box.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	b.ops = append(b.ops,
		pdfmodel.Operator{
			Code: pdfmodel.OpConstructPath,
			Args: []pdfmodel.PathSegment{
				{Op: pdfmodel.PathRectangle, Coords: []float64{x, y, w, h}},
			},
		},
		pdfmodel.Operator{Code: pdfmodel.OpFill},
	)
	return b
}

// MoveLineFill appends a construct-path built from explicit moveTo/lineTo
// points followed by a fill (the general polygon-as-ruling case).
func (b *Builder) MoveLineFill(points [][2]float64) *Builder {
	segs := make([]pdfmodel.PathSegment, 0, len(points))
	for i, p := range points {
		op := pdfmodel.PathLineTo
		if i == 0 {
			op = pdfmodel.PathMoveTo
		}
		segs = append(segs, pdfmodel.PathSegment{Op: op, Coords: []float64{p[0], p[1]}})
	}
	b.ops = append(b.ops,
		pdfmodel.Operator{Code: pdfmodel.OpConstructPath, Args: segs},
		pdfmodel.Operator{Code: pdfmodel.OpFill},
	)
	return b
}

// Text appends a TextItem placed by the given rendering matrix.
func (b *Builder) Text(str string, width float64, m pdfmodel.Matrix) *Builder {
	b.items = append(b.items, pdfmodel.TextItem{
		Str:       str,
		Width:     width,
		Transform: [6]float64{m.A, m.B, m.C, m.D, m.E, m.F},
	})
	return b
}

// Page finalizes the fixture.
func (b *Builder) Page() pdfmodel.Page {
	return pdfmodel.Page{
		Operators: pdfmodel.OperatorList{Operators: b.ops},
		TextItems: b.items,
		Rotate:    b.rot,
		Width:     b.w,
		Height:    b.h,
	}
}

// Source is a fixed, in-memory pdfmodel.PageSource backed by a slice of
// pre-built pages.
type Source struct {
	Pages []pdfmodel.Page
}

// NewSource creates a Source from already-built pages.
func NewSource(pages ...pdfmodel.Page) *Source {
	return &Source{Pages: pages}
}

func (s *Source) NumPages() int { return len(s.Pages) }

func (s *Source) GetPage(n int) (pdfmodel.Page, error) {
	if n < 1 || n > len(s.Pages) {
		return pdfmodel.Page{}, errOutOfRange
	}
	return s.Pages[n-1], nil
}
