// Package metrics exports operator class activity as Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/peterstace/spquad"
)

// Collector is a spquad.Observer that records each call in Prometheus
// metrics.
type Collector struct {
	ChooseTotal           *prometheus.CounterVec
	PickSplitTotal        prometheus.Counter
	PickSplitValues       prometheus.Histogram
	PickSplitAllTheSame   prometheus.Counter
	InnerConsistentTotal  prometheus.Counter
	InnerConsistentVisits prometheus.Histogram
	LeafConsistentTotal   *prometheus.CounterVec
	ErrorsTotal           *prometheus.CounterVec
}

var _ spquad.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg. It
// panics if any of the metrics are already registered.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		ChooseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spquad_choose_total",
			Help: "Total choose calls by chosen quadrant (all_the_same when the host picks)",
		}, []string{"quadrant"}),
		PickSplitTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spquad_picksplit_total",
			Help: "Total picksplit calls",
		}),
		PickSplitValues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "spquad_picksplit_values",
			Help:    "Number of values divided per picksplit call",
			Buckets: []float64{2, 4, 8, 16, 32, 64, 128, 256},
		}),
		PickSplitAllTheSame: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spquad_picksplit_single_quadrant_total",
			Help: "Total picksplit calls that sent every value to one quadrant",
		}),
		InnerConsistentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spquad_inner_consistent_total",
			Help: "Total inner consistent calls",
		}),
		InnerConsistentVisits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "spquad_inner_consistent_visit_ratio",
			Help:    "Fraction of child nodes left to visit per inner consistent call",
			Buckets: []float64{0, 0.25, 0.5, 0.75, 1},
		}),
		LeafConsistentTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spquad_leaf_consistent_total",
			Help: "Total leaf consistent calls by result",
		}, []string{"result"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spquad_errors_total",
			Help: "Total failed calls by operation and error kind",
		}, []string{"op", "kind"}),
	}
	reg.MustRegister(
		c.ChooseTotal,
		c.PickSplitTotal,
		c.PickSplitValues,
		c.PickSplitAllTheSame,
		c.InnerConsistentTotal,
		c.InnerConsistentVisits,
		c.LeafConsistentTotal,
		c.ErrorsTotal,
	)
	return c
}

func (c *Collector) ObserveChoose(r spquad.ChooseResult) {
	switch r := r.(type) {
	case spquad.MatchNode:
		c.ChooseTotal.WithLabelValues(strconv.Itoa(r.Node + 1)).Inc()
	case spquad.MatchAllTheSame:
		c.ChooseTotal.WithLabelValues("all_the_same").Inc()
	}
}

func (c *Collector) ObservePickSplit(r spquad.SplitResult) {
	c.PickSplitTotal.Inc()
	c.PickSplitValues.Observe(float64(len(r.MapToNodes)))
	if len(r.MapToNodes) == 0 {
		return
	}
	for _, n := range r.MapToNodes[1:] {
		if n != r.MapToNodes[0] {
			return
		}
	}
	c.PickSplitAllTheSame.Inc()
}

func (c *Collector) ObserveInnerConsistent(nNodes int, visit []int) {
	c.InnerConsistentTotal.Inc()
	if nNodes > 0 {
		c.InnerConsistentVisits.Observe(float64(len(visit)) / float64(nNodes))
	}
}

func (c *Collector) ObserveLeafConsistent(r spquad.LeafResult) {
	result := "miss"
	if r.Match {
		result = "match"
	}
	c.LeafConsistentTotal.WithLabelValues(result).Inc()
}

func (c *Collector) ObserveError(op spquad.Op, err error) {
	c.ErrorsTotal.WithLabelValues(string(op), spquad.ErrorKind(err)).Inc()
}
