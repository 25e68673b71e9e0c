// Package quadprom exports quadtree metrics to Prometheus.
//
//	c := quadprom.NewCollector("game")
//	prometheus.MustRegister(c)
//	tr, err := quadtree.New[*Sprite](bounds, quadtree.WithMetricsCollector(c))
package quadprom

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/peterstace/quadtree"
)

// Collector implements quadtree.MetricsCollector on Prometheus metrics. It is
// itself a prometheus.Collector and must be registered to be scraped.
type Collector struct {
	inserts          *prometheus.CounterVec
	insertDuration   prometheus.Histogram
	batchItems       prometheus.Counter
	retrieves        prometheus.Counter
	retrieveVisited  prometheus.Histogram
	retrieveDuration prometheus.Histogram
	divides          *prometheus.CounterVec
	clears           prometheus.Counter
}

var _ quadtree.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "inserts_total",
			Help:      "Insert calls by kind and result",
		}, []string{"kind", "result"}),
		insertDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "insert_duration_seconds",
			Help:      "Insert and batch insert duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10), // 100ns to ~26ms
		}),
		batchItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "batch_items_total",
			Help:      "Items added through successful batch inserts",
		}),
		retrieves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "retrieves_total",
			Help:      "Retrieve calls",
		}),
		retrieveVisited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "retrieve_candidates",
			Help:      "Candidate items visited per retrieve",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 1000},
		}),
		retrieveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "retrieve_duration_seconds",
			Help:      "Retrieve duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}),
		divides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "divides_total",
			Help:      "Leaf divisions by depth of the divided node",
		}, []string{"depth"}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quadtree",
			Name:      "clears_total",
			Help:      "Clear calls",
		}),
	}
}

func (c *Collector) metrics() []prometheus.Collector {
	return []prometheus.Collector{
		c.inserts, c.insertDuration, c.batchItems,
		c.retrieves, c.retrieveVisited, c.retrieveDuration,
		c.divides, c.clears,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.metrics() {
		m.Collect(ch)
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordInsert implements quadtree.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration, err error) {
	c.inserts.WithLabelValues("single", result(err)).Inc()
	c.insertDuration.Observe(duration.Seconds())
}

// RecordBatchInsert implements quadtree.MetricsCollector.
func (c *Collector) RecordBatchInsert(count int, duration time.Duration, err error) {
	c.inserts.WithLabelValues("batch", result(err)).Inc()
	c.insertDuration.Observe(duration.Seconds())
	if err == nil {
		c.batchItems.Add(float64(count))
	}
}

// RecordRetrieve implements quadtree.MetricsCollector.
func (c *Collector) RecordRetrieve(visited int, duration time.Duration) {
	c.retrieves.Inc()
	c.retrieveVisited.Observe(float64(visited))
	c.retrieveDuration.Observe(duration.Seconds())
}

// RecordDivide implements quadtree.MetricsCollector.
func (c *Collector) RecordDivide(depth int) {
	c.divides.WithLabelValues(strconv.Itoa(depth)).Inc()
}

// RecordClear implements quadtree.MetricsCollector.
func (c *Collector) RecordClear() {
	c.clears.Inc()
}
