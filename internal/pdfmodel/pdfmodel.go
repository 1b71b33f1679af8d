// Package pdfmodel defines the shape of the PDF rendering collaborator this
// module consumes but does not implement: a decoder that has already parsed
// a PDF's content streams into an operator list and a text-item list. The
// actual decoding of PDF object streams, fonts, and content-stream tokens is
// out of scope here; callers supply a PageSource backed by whatever decoder
// they choose.
package pdfmodel

// Opcode identifies a single step of a page's rendering program, in the
// vocabulary of a PDF.js-style operator list rather than raw content-stream
// operators.
type Opcode int

const (
	// OpSave pushes the current transform onto the transform stack.
	OpSave Opcode = iota
	// OpRestore pops the transform stack.
	OpRestore
	// OpTransform concatenates a Matrix (carried in Args) onto the current
	// transform.
	OpTransform
	// OpConstructPath begins a new path built from the sub-operations and
	// coordinate pairs carried in Args; see PathOp.
	OpConstructPath
	// OpFill paints the current path using the nonzero winding rule.
	OpFill
	// OpEOFill paints the current path using the even-odd winding rule.
	OpEOFill
)

// PathOp identifies one step within an OpConstructPath's sub-operation list.
type PathOp int

const (
	// PathMoveTo begins a new subpath at (x, y).
	PathMoveTo PathOp = iota
	// PathLineTo appends a line segment to (x, y).
	PathLineTo
	// PathRectangle appends a closed rectangle (x, y, width, height).
	PathRectangle
)

// Operator is one entry of an OperatorList.
type Operator struct {
	Code Opcode
	// Args holds the operator's payload. Its shape depends on Code:
	//   OpTransform:      Args = [6]float64{a, b, c, d, e, f} (a Matrix)
	//   OpConstructPath:  Args = []PathSegment
	//   all others:       Args is nil
	Args any
}

// PathSegment is one step of an OpConstructPath operator.
type PathSegment struct {
	Op PathOp
	// Coords holds (x, y) for PathMoveTo/PathLineTo, or
	// (x, y, width, height) for PathRectangle.
	Coords []float64
}

// OperatorList is the ordered rendering program for one PDF page, as
// produced by an external decoder.
type OperatorList struct {
	Operators []Operator
}

// Matrix is a 2×3 affine transform in PDF's [a b c d e f] convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transform.
var Identity = Matrix{A: 1, D: 1}

// Multiply returns the matrix representing "apply m first, then n"
// (m concatenated with n in PDF's cm operator order).
func Multiply(m, n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Apply transforms a point by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// TextItem is one run of shaped text as placed on the page by the decoder,
// carrying its own text-rendering matrix rather than a pre-computed
// position; the engine is responsible for deriving the on-page bounding
// box (see internal/textlayer).
type TextItem struct {
	Str   string
	Width float64
	// Transform is the text-rendering matrix [a b c d e f] in effect when
	// this item was placed; e, f are the glyph origin and a, b, c, d carry
	// the font size and any rotation/skew.
	Transform [6]float64
}

// Rotation is a page's declared viewer rotation, always a multiple of 90
// degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Page is a single decoded page: its rendering program, its text items, its
// declared rotation, and its media box dimensions.
type Page struct {
	Operators OperatorList
	TextItems []TextItem
	Rotate    Rotation
	Width     float64
	Height    float64
}

// PageSource is the PDF decoder collaborator. An implementation has already
// parsed the underlying PDF file; this module only reads the result.
type PageSource interface {
	NumPages() int
	// GetPage returns the 1-indexed page. Implementations return an error
	// only for out-of-range indices or decode failures specific to that
	// page; a page with no drawable content is valid and has empty
	// Operators/TextItems.
	GetPage(n int) (Page, error)
}
