package spquad

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
)

// BoxSource reads the geometric properties of stored values that the operator
// class needs.
type BoxSource interface {
	// BBox gives a bounding box that covers the value's full extent.
	BBox(Datum) (BBox, error)

	// Point gives the value's representative point, used to position the
	// centroid when splitting.
	Point(Datum) (orb.Point, error)
}

// SerializedSource is a BoxSource for values built by Serialize.
type SerializedSource struct {
	Logger *slog.Logger
}

// BBox uses the box stored in the value's header when there is one. Otherwise
// it decodes the geometry and rounds its extent outwards to single precision.
func (s SerializedSource) BBox(d Datum) (BBox, error) {
	prefix := d
	if len(prefix) > PrefixSize {
		prefix = prefix[:PrefixSize]
	}
	if bb, ok := CachedBBox(prefix); ok {
		s.log().Debug("box_from_header", "box", bb)
		return bb, nil
	}

	g, err := Decode(d)
	if err != nil {
		return BBox{}, err
	}
	ext, ok := extent(g)
	if !ok {
		s.log().Debug("box_unavailable", "type", g.GeoJSONType())
		return BBox{}, fmt.Errorf("%w: %s has no vertices", ErrExtentUnavailable, g.GeoJSONType())
	}
	bb := BBoxFromBound(ext)
	s.log().Debug("box_computed", "type", g.GeoJSONType(), "box", bb)
	return bb, nil
}

// Point gives the coordinate of a point value. For other geometries it's the
// first vertex in storage order, which is only a rough stand in.
func (s SerializedSource) Point(d Datum) (orb.Point, error) {
	g, err := Decode(d)
	if err != nil {
		return orb.Point{}, err
	}
	p, ok := firstPoint(g)
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: %s has no vertices", ErrExtentUnavailable, g.GeoJSONType())
	}
	return p, nil
}

func (s SerializedSource) log() *slog.Logger {
	if s.Logger == nil {
		return discardLogger
	}
	return s.Logger
}
