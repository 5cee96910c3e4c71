package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Excuse source labels.
const (
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Remote failure kinds.
const (
	FailureNetwork    = "network"
	FailureHTTP       = "http"
	FailureMalformed  = "malformed"
	FailureUpstream   = "upstream"
	FailureRestricted = "restricted"
)

var (
	excusesProduced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excuses_produced_total",
			Help: "Total excuses returned by source and classification kind",
		},
		[]string{"source", "classification"},
	)

	remoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "excuses_remote_failures_total",
			Help: "Total remote generation failures that fell back to the local corpus",
		},
		[]string{"kind"},
	)

	cacheEntriesDesc = prometheus.NewDesc(
		"excuses_cache_entries",
		"Current number of entries in the response cache",
		nil,
		nil,
	)
	cacheCapacityDesc = prometheus.NewDesc(
		"excuses_cache_capacity",
		"Maximum number of entries in the response cache",
		nil,
		nil,
	)
)

// CacheStats is implemented by the response cache.
type CacheStats interface {
	Len() int
	Capacity() int
}

// CacheCollector is a custom Prometheus collector that reads the cache size
// on each scrape.
type CacheCollector struct {
	cache CacheStats
}

// Describe sends the metric descriptors to the channel.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cacheEntriesDesc
	ch <- cacheCapacityDesc
}

// Collect emits the current cache size and capacity as gauges.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(cacheEntriesDesc, prometheus.GaugeValue, float64(c.cache.Len()))
	ch <- prometheus.MustNewConstMetric(cacheCapacityDesc, prometheus.GaugeValue, float64(c.cache.Capacity()))
}

var (
	initialized atomic.Bool
	initOnce    sync.Once
)

// Init registers the collectors with the default registry.
// Must be called once at startup; recording is a no-op before that.
func Init(cache CacheStats) {
	initOnce.Do(func() {
		prometheus.MustRegister(excusesProduced, remoteFailures, &CacheCollector{cache: cache})
		initialized.Store(true)
	})
}

// RecordExcuse counts one produced excuse.
func RecordExcuse(source, classification string) {
	if !initialized.Load() {
		return
	}
	excusesProduced.WithLabelValues(source, classification).Inc()
}

// RecordRemoteFailure counts one remote failure by kind.
func RecordRemoteFailure(kind string) {
	if !initialized.Load() {
		return
	}
	remoteFailures.WithLabelValues(kind).Inc()
}
