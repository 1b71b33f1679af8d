package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectRectangles(t *testing.T) {
	tests := []struct {
		name     string
		r1, r2   Rectangle
		expected Rectangle
	}{
		{
			name:     "overlapping",
			r1:       NewRectangle(0, 0, 10, 10),
			r2:       NewRectangle(5, 5, 10, 10),
			expected: NewRectangle(5, 5, 5, 5),
		},
		{
			name:     "disjoint",
			r1:       NewRectangle(0, 0, 10, 10),
			r2:       NewRectangle(20, 20, 10, 10),
			expected: Zero,
		},
		{
			name:     "touching edges only",
			r1:       NewRectangle(0, 0, 10, 10),
			r2:       NewRectangle(10, 0, 10, 10),
			expected: Zero,
		},
		{
			name:     "containment",
			r1:       NewRectangle(0, 0, 10, 10),
			r2:       NewRectangle(2, 2, 4, 4),
			expected: NewRectangle(2, 2, 4, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntersectRectangles(tt.r1, tt.r2))
		})
	}
}

func TestArea(t *testing.T) {
	assert.Equal(t, 200.0, Area(NewRectangle(0, 0, 20, 10)))
	assert.Equal(t, 0.0, Area(Zero))
}

func TestPercentOfAInB(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(0, 0, 5, 10) // half of a overlaps
	assert.InDelta(t, 50.0, PercentOfAInB(a, b), 0.001)

	// zero-area a
	assert.Equal(t, 0.0, PercentOfAInB(Zero, b))

	// element fully inside cell
	elem := NewRectangle(1, 1, 2, 2)
	cell := NewRectangle(0, 0, 10, 10)
	assert.InDelta(t, 100.0, PercentOfAInB(elem, cell), 0.001)
}

func TestHorizontalOverlapPercent(t *testing.T) {
	r1 := NewRectangle(0, 0, 10, 5)
	r2 := NewRectangle(5, 0, 10, 5)
	// intersection width = 5 (5..10), union width = 15 (0..15)
	assert.InDelta(t, 100.0*5/15, HorizontalOverlapPercent(r1, r2), 0.001)

	disjoint := NewRectangle(20, 0, 5, 5)
	assert.Equal(t, 0.0, HorizontalOverlapPercent(r1, disjoint))

	zeroWidth := NewRectangle(5, 0, 0, 5)
	assert.Equal(t, 0.0, HorizontalOverlapPercent(r1, zeroWidth))
}

func TestRotate90Clockwise(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40)
	rotated := Rotate90Clockwise(r)
	assert.Equal(t, NewRectangle(-60, 10, 40, 30), rotated)
}

func TestIsThinHorizontalVertical(t *testing.T) {
	h := NewRectangle(0, 0, 100, 1)
	assert.True(t, h.IsThinHorizontal())
	assert.False(t, h.IsThinVertical())

	v := NewRectangle(0, 0, 1, 100)
	assert.True(t, v.IsThinVertical())
	assert.False(t, v.IsThinHorizontal())

	decoration := NewRectangle(0, 0, 4, 2)
	assert.False(t, decoration.IsThinHorizontal())
	assert.False(t, decoration.IsThinVertical())
}

func TestIntersectLines(t *testing.T) {
	horiz := NewLine(NewPoint(0, 5), NewPoint(10, 5))
	vert := NewLine(NewPoint(5, 0), NewPoint(5, 10))

	p, ok := IntersectLines(horiz, vert)
	assert.True(t, ok)
	assert.Equal(t, NewPoint(5, 5), p)

	parallel := NewLine(NewPoint(0, 6), NewPoint(10, 6))
	_, ok = IntersectLines(horiz, parallel)
	assert.False(t, ok)

	outOfRange := NewLine(NewPoint(20, 0), NewPoint(20, 10))
	_, ok = IntersectLines(horiz, outOfRange)
	assert.False(t, ok)

	zeroLength := NewLine(NewPoint(5, 5), NewPoint(5, 5))
	_, ok = IntersectLines(horiz, zeroLength)
	assert.False(t, ok)
}

func TestPointWithinTolerance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(2, 2)
	assert.True(t, p1.WithinTolerance(p2))

	p3 := NewPoint(10, 10)
	assert.False(t, p1.WithinTolerance(p3))
}
