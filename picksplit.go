package spquad

import "fmt"

// SplitResult describes how to replace a full node with a new inner node.
// Value i goes to child MapToNodes[i] and is stored there as LeafDatums[i].
type SplitResult struct {
	Centroid   Centroid
	NNodes     int
	MapToNodes []int
	LeafDatums []Datum
}

// PickSplit places a centroid at the mean of the values' representative
// points and divides the values between the four quadrants around it. Values
// are assumed to be point like. Extended values still end up in the right
// quadrant, but the centroid is only placed well for points.
func (o *OpClass) PickSplit(ds []Datum) (SplitResult, error) {
	if len(ds) == 0 {
		return SplitResult{}, o.fail(OpPickSplit, ErrEmptySplit)
	}
	src := o.source()

	var x, y float64
	for i, d := range ds {
		p, err := src.Point(d)
		if err != nil {
			return SplitResult{}, o.fail(OpPickSplit, fmt.Errorf("value %d: %w", i, err))
		}
		x += p.X()
		y += p.Y()
	}
	x /= float64(len(ds))
	y /= float64(len(ds))

	res := SplitResult{
		Centroid:   NewCentroid(float32(x), float32(y)),
		NNodes:     4,
		MapToNodes: make([]int, len(ds)),
		LeafDatums: make([]Datum, len(ds)),
	}
	var counts [4]int
	for i, d := range ds {
		bb, err := src.BBox(d)
		if err != nil {
			return SplitResult{}, o.fail(OpPickSplit, fmt.Errorf("value %d: %w", i, err))
		}
		q, err := Classify(res.Centroid, bb)
		if err != nil {
			return SplitResult{}, o.fail(OpPickSplit, fmt.Errorf("value %d: %w", i, err))
		}
		res.MapToNodes[i] = q.Node()
		res.LeafDatums[i] = d
		counts[q.Node()]++
	}

	o.log().Debug("picksplit", "values", len(ds), "centroid", res.Centroid, "counts", counts)
	o.observer().ObservePickSplit(res)
	return res, nil
}
