// Package pagenorm converts cell and element geometry from PDF's bottom-up
// coordinate system to the screen-style top-down system the rest of the
// engine assumes, and applies the page's declared rotation.
package pagenorm

import (
	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/pdfmodel"
)

// InvertY replaces y with −(y+height), converting a PDF bottom-up rectangle
// to top-down. This step is applied to every cell and every element
// unconditionally, before any rotation handling.
func InvertY(r geometry.Rectangle) geometry.Rectangle {
	return geometry.NewRectangle(r.X, -(r.Y + r.Height), r.Width, r.Height)
}

// elementRotationCorrection is the empirical fix applied only to elements
// (never cells) on a 90°-rotated page, realigning glyph runs emitted under
// the rotated font transform. Its justification beyond "experimentation" is
// unclear; it is preserved as specified.
func elementRotationCorrection(r geometry.Rectangle) geometry.Rectangle {
	return geometry.NewRectangle(r.X, r.Y-r.Width, r.Height, r.Width)
}

// NormalizeCell applies the coordinate normalization a cell rectangle
// undergoes for the page's declared rotation. Only 0° and 90° are
// supported; 180°/270° receive the Y-invert only, which is expected to
// yield empty downstream extraction rather than a crash.
func NormalizeCell(r geometry.Rectangle, rotate pdfmodel.Rotation) geometry.Rectangle {
	r = InvertY(r)
	if rotate == pdfmodel.Rotate90 {
		r = geometry.Rotate90Clockwise(r)
	}
	return r
}

// NormalizeElement applies the coordinate normalization an element
// rectangle undergoes: Y-invert, then (for 90°) rotation plus the
// element-only empirical correction.
func NormalizeElement(r geometry.Rectangle, rotate pdfmodel.Rotation) geometry.Rectangle {
	r = InvertY(r)
	if rotate == pdfmodel.Rotate90 {
		r = geometry.Rotate90Clockwise(r)
		r = elementRotationCorrection(r)
	}
	return r
}

// Supported reports whether rotate is a rotation this package can fully
// normalize. 180° and 270° are accepted as input without error but are not
// given a rotation transform, per the unsupported-rotation error policy.
func Supported(rotate pdfmodel.Rotation) bool {
	return rotate == pdfmodel.Rotate0 || rotate == pdfmodel.Rotate90
}
