package spquad

// ChooseResult says where a value being inserted goes next. It's either a
// MatchNode or a MatchAllTheSame.
type ChooseResult interface {
	isChooseResult()
}

// MatchNode sends the value down to child Node.
type MatchNode struct {
	Node      int
	LevelAdd  int
	RestDatum Datum
}

// MatchAllTheSame sends the value down to any child of an all-the-same node.
// The host engine picks which.
type MatchAllTheSame struct {
	LevelAdd  int
	RestDatum Datum
}

func (MatchNode) isChooseResult()       {}
func (MatchAllTheSame) isChooseResult() {}

// Choose routes a value being inserted to a child of an inner node. The value
// is passed on unchanged and the level is never advanced.
func (o *OpClass) Choose(d Datum, node NodeContext) (ChooseResult, error) {
	var res ChooseResult
	switch n := node.(type) {
	case AllTheSameNode:
		res = MatchAllTheSame{LevelAdd: 0, RestDatum: d}
	case QuadNode:
		bb, err := o.source().BBox(d)
		if err != nil {
			return nil, o.fail(OpChoose, err)
		}
		q, err := Classify(n.Centroid, bb)
		if err != nil {
			return nil, o.fail(OpChoose, err)
		}
		o.log().Debug("choose", "centroid", n.Centroid, "box", bb, "quadrant", int(q))
		res = MatchNode{Node: q.Node(), LevelAdd: 0, RestDatum: d}
	default:
		panic("spquad: unknown node context")
	}

	o.observer().ObserveChoose(res)
	return res, nil
}
