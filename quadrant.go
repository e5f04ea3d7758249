package spquad

import "fmt"

// Centroid is the reference point that an inner node's children are
// arranged around. It can only be built by NewCentroid, so it is always a
// single point.
type Centroid struct {
	x, y float32
}

// NewCentroid creates a centroid at (x, y).
func NewCentroid(x, y float32) Centroid {
	return Centroid{x, y}
}

// X gives the centroid's x coordinate.
func (c Centroid) X() float32 { return c.x }

// Y gives the centroid's y coordinate.
func (c Centroid) Y() float32 { return c.y }

// BBox gives the centroid as a degenerate box.
func (c Centroid) BBox() BBox {
	return BBox{MinX: c.x, MaxX: c.x, MinY: c.y, MaxY: c.y}
}

func (c Centroid) String() string {
	return fmt.Sprintf("CENTROID(%g %g)", c.x, c.y)
}

// Quadrant identifies one of the four regions around a centroid:
//
//	 4 | 1
//	---+---
//	 3 | 2
//
// Child node i of an inner node holds the values in quadrant i+1.
type Quadrant int

// Node gives the index of the child node that holds the quadrant.
func (q Quadrant) Node() int {
	return int(q) - 1
}

// Classify works out which quadrant around c a box belongs to. A box that
// touches or straddles an axis goes to the lowest numbered quadrant whose
// condition it meets. An error is only returned for boxes with NaN
// coordinates or absent boxes.
func Classify(c Centroid, b BBox) (Quadrant, error) {
	if b.absent {
		return 0, fmt.Errorf("%w: cannot classify %v", ErrInvariantViolation, b)
	}
	x, y := c.x, c.y
	switch {
	case b.MaxX >= x && b.MaxY >= y:
		return 1, nil
	case b.MaxX >= x && b.MaxY <= y:
		return 2, nil
	case b.MaxX <= x && b.MinY <= y:
		return 3, nil
	case b.MaxX <= x && b.MinY >= y:
		return 4, nil
	}
	return 0, fmt.Errorf("%w: no quadrant of %v holds %v", ErrInvariantViolation, c, b)
}
