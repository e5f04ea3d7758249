package spquad

import (
	"math"

	"github.com/paulmach/orb"
)

// RoundDown gives the largest float32 that is not greater than d.
func RoundDown(d float64) float32 {
	f := float32(d)
	if float64(f) <= d {
		return f
	}
	return math.Nextafter32(f, float32(math.Inf(-1)))
}

// RoundUp gives the smallest float32 that is not less than d.
func RoundUp(d float64) float32 {
	f := float32(d)
	if float64(f) >= d {
		return f
	}
	return math.Nextafter32(f, float32(math.Inf(+1)))
}

// BBoxFromBound converts a double precision extent into a BBox, rounding the
// minimums down and the maximums up so that the result always covers the
// extent.
func BBoxFromBound(b orb.Bound) BBox {
	return BBox{
		MinX: RoundDown(b.Min.X()),
		MinY: RoundDown(b.Min.Y()),
		MaxX: RoundUp(b.Max.X()),
		MaxY: RoundUp(b.Max.Y()),
	}
}
