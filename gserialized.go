package spquad

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// Datum is a stored geometry value. It starts with a fixed size header:
//
//	bytes 0-3  total length, little endian uint32
//	byte  4    flags
//	bytes 5-7  reserved, zero
//
// If the flags have flagBBox set, the header is followed by a precomputed box
// as four little endian float32s (xmin, xmax, ymin, ymax). The rest of the
// value is the geometry encoded as WKB.
type Datum []byte

const (
	headerSize = 8
	bboxSize   = 16

	// PrefixSize is the number of leading bytes of a Datum that CachedBBox
	// needs to see.
	PrefixSize = headerSize + bboxSize

	flagBBox = 1 << 0
)

// Serialize encodes a geometry as a Datum. If withBBox is set and the
// geometry has an extent, the bounding box is stored in the header so that
// readers don't have to decode the geometry to find it.
func Serialize(g orb.Geometry, withBBox bool) (Datum, error) {
	body, err := wkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encoding wkb: %w", err)
	}

	var flags byte
	var bb BBox
	if withBBox {
		if ext, ok := extent(g); ok {
			flags |= flagBBox
			bb = BBoxFromBound(ext)
		}
	}

	size := headerSize + len(body)
	if flags&flagBBox != 0 {
		size += bboxSize
	}
	d := make(Datum, headerSize, size)
	binary.LittleEndian.PutUint32(d[0:4], uint32(size))
	d[4] = flags
	if flags&flagBBox != 0 {
		var buf [bboxSize]byte
		binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(bb.MinX))
		binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(bb.MaxX))
		binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(bb.MinY))
		binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(bb.MaxY))
		d = append(d, buf[:]...)
	}
	return append(d, body...), nil
}

// CachedBBox reads the precomputed bounding box out of the leading bytes of a
// Datum. Only the first PrefixSize bytes are looked at. The second return
// value is false if there is no precomputed box.
func CachedBBox(prefix []byte) (BBox, bool) {
	if len(prefix) < headerSize || prefix[4]&flagBBox == 0 {
		return BBox{}, false
	}
	if len(prefix) < PrefixSize {
		return BBox{}, false
	}
	buf := prefix[headerSize:PrefixSize]
	return BBox{
		MinX: math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])),
		MaxX: math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])),
		MinY: math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])),
		MaxY: math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])),
	}, true
}

// Decode fully deserializes the geometry held in a Datum.
func Decode(d Datum) (orb.Geometry, error) {
	if len(d) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedDatum, len(d))
	}
	if size := binary.LittleEndian.Uint32(d[0:4]); int(size) != len(d) {
		return nil, fmt.Errorf("%w: header length %d but have %d bytes", ErrMalformedDatum, size, len(d))
	}
	body := d[headerSize:]
	if d[4]&flagBBox != 0 {
		if len(body) < bboxSize {
			return nil, fmt.Errorf("%w: truncated bounding box", ErrMalformedDatum)
		}
		body = body[bboxSize:]
	}
	g, err := wkb.Unmarshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDatum, err)
	}
	return g, nil
}

// eachPoint calls fn for each vertex of g in storage order, stopping early if
// fn returns false. NaN points (WKB's POINT EMPTY) are skipped.
func eachPoint(g orb.Geometry, fn func(orb.Point) bool) bool {
	visit := func(ps []orb.Point) bool {
		for _, p := range ps {
			if !fn(p) {
				return false
			}
		}
		return true
	}
	switch g := g.(type) {
	case orb.Point:
		if math.IsNaN(g.X()) || math.IsNaN(g.Y()) {
			return true
		}
		return fn(g)
	case orb.MultiPoint:
		return visit(g)
	case orb.LineString:
		return visit(g)
	case orb.Ring:
		return visit(g)
	case orb.MultiLineString:
		for _, ls := range g {
			if !visit(ls) {
				return false
			}
		}
	case orb.Polygon:
		for _, r := range g {
			if !visit(r) {
				return false
			}
		}
	case orb.MultiPolygon:
		for _, p := range g {
			for _, r := range p {
				if !visit(r) {
					return false
				}
			}
		}
	case orb.Collection:
		for _, sub := range g {
			if !eachPoint(sub, fn) {
				return false
			}
		}
	case orb.Bound:
		return fn(g.Min) && fn(g.Max)
	}
	return true
}

// extent calculates the double precision extent of g. The second return value
// is false if g has no vertices.
func extent(g orb.Geometry) (orb.Bound, bool) {
	var b orb.Bound
	var has bool
	eachPoint(g, func(p orb.Point) bool {
		if has {
			b = b.Extend(p)
		} else {
			b, has = p.Bound(), true
		}
		return true
	})
	return b, has
}

// firstPoint gives the first vertex of g.
func firstPoint(g orb.Geometry) (orb.Point, bool) {
	var first orb.Point
	var has bool
	eachPoint(g, func(p orb.Point) bool {
		first, has = p, true
		return false
	})
	return first, has
}
