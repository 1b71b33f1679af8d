// Package geometry provides the rectangle, line, and point primitives used
// by the table reconstruction engine to reason about PDF page geometry.
//
// All operations are pure and allocate nothing beyond the returned value.
package geometry

import "fmt"

// Tolerance is the fixed distance below which two coordinates, or two
// measurements, are considered equal throughout the engine.
const Tolerance = 3.0

// Point is a location in page units.
type Point struct {
	X, Y float64
}

// NewPoint creates a Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// WithinTolerance reports whether p and other are within Tolerance of each
// other under the euclidean distance.
func (p Point) WithinTolerance(other Point) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx+dy*dy <= Tolerance*Tolerance
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Rectangle is an axis-aligned rectangle with (X, Y) as its lower-left
// corner after normalization (see pagenorm). Width and Height are always
// non-negative.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Zero is the degenerate rectangle returned when two rectangles do not
// intersect.
var Zero = Rectangle{}

// NewRectangle creates a Rectangle. Negative width/height are clamped to
// zero rather than rejected (upstream geometry, e.g. a reversed PDF
// rectangle operator, is tolerated, not an error).
func NewRectangle(x, y, width, height float64) Rectangle {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge (in normalized, top-down
// coordinates this is the visually lower edge; see pagenorm).
func (r Rectangle) Top() float64 { return r.Y + r.Height }

// IsThinHorizontal reports whether r is thin enough, and long enough, to
// represent a horizontal ruling line.
func (r Rectangle) IsThinHorizontal() bool {
	return r.Height <= Tolerance && r.Width >= 10
}

// IsThinVertical reports whether r is thin enough, and long enough, to
// represent a vertical ruling line.
func (r Rectangle) IsThinVertical() bool {
	return r.Width <= Tolerance && r.Height >= 10
}

// String returns a string representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{x=%.2f, y=%.2f, w=%.2f, h=%.2f}", r.X, r.Y, r.Width, r.Height)
}

// Area returns width × height.
func Area(r Rectangle) float64 {
	return r.Width * r.Height
}

// IntersectRectangles returns the intersection of r1 and r2, or Zero when
// they are disjoint.
func IntersectRectangles(r1, r2 Rectangle) Rectangle {
	x := max(r1.X, r2.X)
	y := max(r1.Y, r2.Y)
	right := min(r1.Right(), r2.Right())
	top := min(r1.Top(), r2.Top())

	if right <= x || top <= y {
		return Zero
	}
	return NewRectangle(x, y, right-x, top-y)
}

// PercentOfAInB returns 100 × area(a ∩ b) / area(a), or zero if a has zero
// area.
func PercentOfAInB(a, b Rectangle) float64 {
	areaA := Area(a)
	if areaA == 0 {
		return 0
	}
	return 100 * Area(IntersectRectangles(a, b)) / areaA
}

// HorizontalOverlapPercent returns 100 × intersectionWidth / unionWidth on
// the x-projection of r1 and r2. It is zero if either width is zero or the
// projections are disjoint.
func HorizontalOverlapPercent(r1, r2 Rectangle) float64 {
	if r1.Width == 0 || r2.Width == 0 {
		return 0
	}

	left := max(r1.X, r2.X)
	right := min(r1.Right(), r2.Right())
	if right <= left {
		return 0
	}

	unionLeft := min(r1.X, r2.X)
	unionRight := max(r1.Right(), r2.Right())
	unionWidth := unionRight - unionLeft
	if unionWidth == 0 {
		return 0
	}

	return 100 * (right - left) / unionWidth
}

// Rotate90Clockwise maps (x, y, w, h) → (−(y+h), x, h, w), the transform
// applied to every cell and element when a page declares 90° rotation.
func Rotate90Clockwise(r Rectangle) Rectangle {
	return NewRectangle(-(r.Y + r.Height), r.X, r.Height, r.Width)
}

// Line is a straight segment between two points, used for ruling-line
// intersection tests.
type Line struct {
	Start, End Point
}

// NewLine creates a Line.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// length returns the square of the segment's euclidean length.
func (l Line) length() float64 {
	dx := l.End.X - l.Start.X
	dy := l.End.Y - l.Start.Y
	return dx*dx + dy*dy
}

// IntersectLines returns the intersection point of l1 and l2, and true,
// when both segments have non-zero length, are not parallel, and the
// intersection parameter on both lies in [0, 1]. Otherwise it returns the
// zero Point and false.
func IntersectLines(l1, l2 Line) (Point, bool) {
	if l1.length() == 0 || l2.length() == 0 {
		return Point{}, false
	}

	x1, y1 := l1.Start.X, l1.Start.Y
	x2, y2 := l1.End.X, l1.End.Y
	x3, y3 := l2.Start.X, l2.Start.Y
	x4, y4 := l2.End.X, l2.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false // parallel (or collinear)
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := ((x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return NewPoint(x1+t*(x2-x1), y1+t*(y2-y1)), true
}
