package spquad

// LeafResult is the outcome of testing a stored value against a query.
type LeafResult struct {
	Match bool

	// Recheck is always false, since every supported relation is decided
	// exactly by the boxes.
	Recheck bool

	// Value is the stored value, returned for index only scans.
	Value Datum
}

func supported(s StrategyNumber) bool {
	switch s {
	case StrategyLeft, StrategyRight, StrategySame,
		StrategyBelow, StrategyAbove, StrategyContainedBy:
		return true
	}
	return false
}

func quadrantBit(q Quadrant) int {
	return 1 << uint(q)
}

const allQuadrants = 1<<1 | 1<<2 | 1<<3 | 1<<4

// InnerConsistent works out which children of an inner node may hold values
// matching all of the scan keys. The child indexes are returned in ascending
// order.
func (o *OpClass) InnerConsistent(node NodeContext, keys []ScanKey) ([]int, error) {
	var qn QuadNode
	switch n := node.(type) {
	case AllTheSameNode:
		// Nothing to tell the children apart by, so visit all of them.
		visit := make([]int, n.NNodes)
		for i := range visit {
			visit[i] = i
		}
		o.observer().ObserveInnerConsistent(n.NNodes, visit)
		return visit, nil
	case QuadNode:
		qn = n
	default:
		panic("spquad: unknown node context")
	}

	src := o.source()
	centroid := qn.Centroid.BBox()

	// Bit q is set while quadrant q may still hold matches.
	which := allQuadrants
	for _, key := range keys {
		if !supported(key.Strategy) {
			return nil, o.fail(OpInnerConsistent, &StrategyError{Number: key.Strategy})
		}
		query, err := src.BBox(key.Argument)
		if err != nil {
			return nil, o.fail(OpInnerConsistent, err)
		}

		switch key.Strategy {
		case StrategyLeft:
			if Left(query, centroid) {
				which &= quadrantBit(3) | quadrantBit(4)
			}
		case StrategyRight:
			if Right(query, centroid) {
				which &= quadrantBit(1) | quadrantBit(2)
			}
		case StrategySame:
			// An equal box is classified the same way as the query.
			q, err := Classify(qn.Centroid, query)
			if err != nil {
				return nil, o.fail(OpInnerConsistent, err)
			}
			which &= quadrantBit(q)
		case StrategyBelow:
			// Anything below a query that lies above the centroid is below
			// the centroid too.
			if Above(centroid, query) {
				which &= quadrantBit(2) | quadrantBit(3)
			}
		case StrategyAbove:
			if Below(centroid, query) {
				which &= quadrantBit(1) | quadrantBit(4)
			}
		case StrategyContainedBy:
			if Contains(query, centroid) {
				// Every quadrant has some area inside the query.
				break
			}
			// The query lies within the quadrants of its corners, and so
			// does everything it contains.
			var r int
			for _, corner := range query.corners() {
				q, err := Classify(qn.Centroid, corner)
				if err != nil {
					return nil, o.fail(OpInnerConsistent, err)
				}
				r |= quadrantBit(q)
			}
			which &= r
		}

		if which == 0 {
			break
		}
	}

	visit := make([]int, 0, 4)
	for q := Quadrant(1); q <= 4; q++ {
		if which&quadrantBit(q) != 0 {
			visit = append(visit, q.Node())
		}
	}
	o.log().Debug("inner_consistent", "centroid", qn.Centroid, "keys", len(keys), "visit", visit)
	o.observer().ObserveInnerConsistent(4, visit)
	return visit, nil
}

// LeafConsistent tests a stored value's box against every scan key.
func (o *OpClass) LeafConsistent(leaf Datum, keys []ScanKey) (LeafResult, error) {
	src := o.source()
	entry, err := src.BBox(leaf)
	if err != nil {
		return LeafResult{}, o.fail(OpLeafConsistent, err)
	}

	res := LeafResult{Match: true, Recheck: false, Value: leaf}
	for _, key := range keys {
		if !supported(key.Strategy) {
			return LeafResult{}, o.fail(OpLeafConsistent, &StrategyError{Number: key.Strategy})
		}
		query, err := src.BBox(key.Argument)
		if err != nil {
			return LeafResult{}, o.fail(OpLeafConsistent, err)
		}

		switch key.Strategy {
		case StrategyLeft:
			res.Match = Left(entry, query)
		case StrategyRight:
			res.Match = Right(entry, query)
		case StrategySame:
			res.Match = Equals(entry, query)
		case StrategyBelow:
			res.Match = Below(entry, query)
		case StrategyAbove:
			res.Match = Above(entry, query)
		case StrategyContainedBy:
			res.Match = Contains(query, entry)
		}

		if !res.Match {
			break
		}
	}

	o.observer().ObserveLeafConsistent(res)
	return res, nil
}
