// SPDX-License-Identifier: MIT

// Package metrics counts csvarray operations with Prometheus.
//
// A Collector is a csvarray.Observer: hand it to csvarray.WithObserver and
// every completed read or write updates its counters.
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/dense"
)

// Label values.
const (
	OpRead  = "read"
	OpWrite = "write"

	ResultOK    = "ok"
	ResultError = "error"

	// modeNone labels writes, which have no read mode.
	modeNone = "none"
	// kindOther labels failures that carry no csvarray.ErrorKind.
	kindOther = "other"
)

// Collector holds the gridcsv counters.
type Collector struct {
	Operations *prometheus.CounterVec
	Rows       *prometheus.CounterVec
	Cells      *prometheus.CounterVec
	Errors     *prometheus.CounterVec
}

var _ csvarray.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg.
// Panics if registration fails (duplicate registration is a programmer error).
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridcsv_operations_total",
			Help: "Completed read and write operations",
		}, []string{"op", "mode", "result"}),
		Rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridcsv_rows_total",
			Help: "Rows decoded by successful reads or handed to sinks by writes",
		}, []string{"op"}),
		Cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridcsv_cells_total",
			Help: "Cells decoded by successful reads or handed to sinks by writes",
		}, []string{"op"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridcsv_errors_total",
			Help: "Failed operations by error kind",
		}, []string{"op", "kind"}),
	}
	reg.MustRegister(c.Operations, c.Rows, c.Cells, c.Errors)

	return c
}

// ObserveRead implements csvarray.Observer.
func (c *Collector) ObserveRead(mode csvarray.Mode, shape dense.Shape, err error) {
	c.Operations.WithLabelValues(OpRead, mode.String(), result(err)).Inc()
	if err != nil {
		c.Errors.WithLabelValues(OpRead, kindLabel(err)).Inc()
		return
	}
	c.Rows.WithLabelValues(OpRead).Add(float64(shape.Rows))
	c.Cells.WithLabelValues(OpRead).Add(float64(shape.Len()))
}

// ObserveWrite implements csvarray.Observer. Rows accepted before a sink
// failure are counted: they may already be visible downstream.
func (c *Collector) ObserveWrite(shape dense.Shape, rows int, err error) {
	c.Operations.WithLabelValues(OpWrite, modeNone, result(err)).Inc()
	c.Rows.WithLabelValues(OpWrite).Add(float64(rows))
	c.Cells.WithLabelValues(OpWrite).Add(float64(rows * shape.Cols))
	if err != nil {
		c.Errors.WithLabelValues(OpWrite, kindLabel(err)).Inc()
	}
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

func kindLabel(err error) string {
	if kind, ok := csvarray.KindOf(err); ok {
		return kind.String()
	}
	return kindOther
}

// Sample is one counter value flattened for logging.
type Sample struct {
	Name   string
	Labels string // "k=v,k=v" sorted by key
	Value  float64
}

// Gather flattens every counter in g into samples ordered by name then labels.
func Gather(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(pairs)
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: strings.Join(pairs, ","),
				Value:  m.GetCounter().GetValue(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})

	return out, nil
}
