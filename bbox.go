package spquad

import "fmt"

// BBox is an axis-aligned bounding box with single precision coordinates.
// A BBox built from a double precision extent never shrinks that extent (see
// BBoxFromBound).
type BBox struct {
	MinX, MinY, MaxX, MaxY float32
	absent                 bool
}

// NoBBox is the box of a value that has no computable extent.
var NoBBox = BBox{absent: true}

// IsAbsent reports if the box is NoBBox.
func (b BBox) IsAbsent() bool {
	return b.absent
}

func (b BBox) String() string {
	if b.absent {
		return "BBOX EMPTY"
	}
	return fmt.Sprintf("BBOX(%g %g,%g %g)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// corners gives the four corners of the box as degenerate boxes, in the order
// lower left, lower right, upper right, upper left.
func (b BBox) corners() [4]BBox {
	return [4]BBox{
		{MinX: b.MinX, MaxX: b.MinX, MinY: b.MinY, MaxY: b.MinY},
		{MinX: b.MaxX, MaxX: b.MaxX, MinY: b.MinY, MaxY: b.MinY},
		{MinX: b.MaxX, MaxX: b.MaxX, MinY: b.MaxY, MaxY: b.MaxY},
		{MinX: b.MinX, MaxX: b.MinX, MinY: b.MaxY, MaxY: b.MaxY},
	}
}

// The predicates below return false whenever either box is absent. That
// doesn't mean the boxes are disjoint, only that no relationship can be
// claimed for a value with no extent.

// Contains reports if a fully encloses b.
func Contains(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MinX <= b.MinX && a.MaxX >= b.MaxX &&
		a.MinY <= b.MinY && a.MaxY >= b.MaxY
}

// Left reports if a is strictly left of b.
func Left(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MaxX < b.MinX
}

// Right reports if a is strictly right of b.
func Right(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MinX > b.MaxX
}

// Below reports if a is strictly below b.
func Below(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MaxY < b.MinY
}

// Above reports if a is strictly above b.
func Above(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MinY > b.MaxY
}

// OverLeft reports if a does not extend to the right of b.
func OverLeft(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MaxX <= b.MaxX
}

// OverRight reports if a does not extend to the left of b.
func OverRight(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MinX >= b.MinX
}

// OverBelow reports if a does not extend above b.
func OverBelow(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MaxY <= b.MaxY
}

// OverAbove reports if a does not extend below b.
func OverAbove(a, b BBox) bool {
	if a.absent || b.absent {
		return false
	}
	return a.MinY >= b.MinY
}

// Equals reports if the boxes have identical coordinates. Two absent boxes
// are equal to each other and to nothing else.
func Equals(a, b BBox) bool {
	if a.absent || b.absent {
		return a.absent == b.absent
	}
	return a.MinX == b.MinX && a.MaxX == b.MaxX &&
		a.MinY == b.MinY && a.MaxY == b.MaxY
}
