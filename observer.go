package spquad

// Op names an operator class operation.
type Op string

const (
	OpChoose          Op = "choose"
	OpPickSplit       Op = "picksplit"
	OpInnerConsistent Op = "inner_consistent"
	OpLeafConsistent  Op = "leaf_consistent"
)

// Observer is notified of the outcome of each operator class call. It's
// called synchronously, so implementations must be cheap and safe for
// concurrent use.
type Observer interface {
	ObserveChoose(ChooseResult)
	ObservePickSplit(SplitResult)
	// ObserveInnerConsistent gets the node's fan-out and the child nodes
	// that must be visited.
	ObserveInnerConsistent(nNodes int, visit []int)
	ObserveLeafConsistent(LeafResult)
	ObserveError(Op, error)
}

type nopObserver struct{}

func (nopObserver) ObserveChoose(ChooseResult)        {}
func (nopObserver) ObservePickSplit(SplitResult)      {}
func (nopObserver) ObserveInnerConsistent(int, []int) {}
func (nopObserver) ObserveLeafConsistent(LeafResult)  {}
func (nopObserver) ObserveError(Op, error)            {}
