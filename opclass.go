package spquad

import (
	"context"
	"log/slog"
)

// Operator is the set of callbacks a space partitioning tree engine calls to
// shape and search an index.
type Operator interface {
	Config() Config
	Choose(d Datum, node NodeContext) (ChooseResult, error)
	PickSplit(ds []Datum) (SplitResult, error)
	InnerConsistent(node NodeContext, keys []ScanKey) ([]int, error)
	LeafConsistent(leaf Datum, keys []ScanKey) (LeafResult, error)
}

var _ Operator = (*OpClass)(nil)

// OpClass is a quad-tree operator class over bounding boxes. Its zero value
// is ready to use and reads values built by Serialize. An OpClass holds no
// mutable state, so it's safe for concurrent use.
type OpClass struct {
	// Source extracts boxes and points from values. Defaults to a
	// SerializedSource.
	Source BoxSource

	// Logger receives debug traces and error reports. Nil disables logging.
	Logger *slog.Logger

	// Observer is told about each call. Nil disables observation.
	Observer Observer
}

// NodeContext describes the inner node an operation is working on. It's
// either a QuadNode or an AllTheSameNode.
type NodeContext interface {
	isNodeContext()
}

// QuadNode is an inner node with a centroid and four children, one per
// quadrant.
type QuadNode struct {
	Centroid Centroid
}

// AllTheSameNode is an inner node whose children can't be told apart. The
// host engine decides its fan-out.
type AllTheSameNode struct {
	NNodes int
}

func (QuadNode) isNodeContext()       {}
func (AllTheSameNode) isNodeContext() {}

// Config gives the operator class's static configuration.
func (o *OpClass) Config() Config {
	return Configure()
}

func (o *OpClass) source() BoxSource {
	if o.Source == nil {
		return SerializedSource{Logger: o.Logger}
	}
	return o.Source
}

func (o *OpClass) log() *slog.Logger {
	if o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}

func (o *OpClass) observer() Observer {
	if o.Observer == nil {
		return nopObserver{}
	}
	return o.Observer
}

// fail reports err and hands it back for returning.
func (o *OpClass) fail(op Op, err error) error {
	o.log().Error(string(op)+"_failed", "kind", ErrorKind(err), "err", err)
	o.observer().ObserveError(op, err)
	return err
}

var discardLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
