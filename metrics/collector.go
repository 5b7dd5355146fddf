// Package metrics exports reactive.System statistics to Prometheus.
//
// A System is single-goroutine, so the collector never touches it during a
// scrape. The goroutine that owns the System calls Update after a burst of
// work and scrapes read the last snapshot.
package metrics

import (
	"sync"

	"github.com/delaneyj/pozitron/reactive"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is a prometheus.Collector over the last Update snapshot.
type Collector struct {
	mu   sync.Mutex
	last reactive.Stats

	nodes      *prometheus.Desc
	edges      *prometheus.Desc
	queued     *prometheus.Desc
	recomputes *prometheus.Desc
	effectRuns *prometheus.Desc
	flushes    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds the metric descriptors under namespace.
func NewCollector(namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "reactive", name), help, labels, constLabels)
	}
	return &Collector{
		nodes:      desc("nodes", "Live graph nodes by kind.", "kind"),
		edges:      desc("edges", "Live dependency edges."),
		queued:     desc("queued_effects", "Effects waiting for the current batch to flush."),
		recomputes: desc("recomputes_total", "Memo recomputations."),
		effectRuns: desc("effect_runs_total", "Effect and subscription runs."),
		flushes:    desc("flushes_total", "Batch flushes with a non-empty queue."),
	}
}

// Update snapshots rs. Call it from the goroutine that owns rs.
func (c *Collector) Update(rs *reactive.System) {
	s := rs.Stats()
	c.mu.Lock()
	c.last = s
	c.mu.Unlock()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.edges
	ch <- c.queued
	ch <- c.recomputes
	ch <- c.effectRuns
	ch <- c.flushes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	s := c.last
	c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Signals), "signal")
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Memos), "memo")
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Effects), "effect")
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(s.Edges))
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(s.Queued))
	ch <- prometheus.MustNewConstMetric(c.recomputes, prometheus.CounterValue, float64(s.Recomputes))
	ch <- prometheus.MustNewConstMetric(c.effectRuns, prometheus.CounterValue, float64(s.EffectRuns))
	ch <- prometheus.MustNewConstMetric(c.flushes, prometheus.CounterValue, float64(s.Flushes))
}
