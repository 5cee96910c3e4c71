package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeCache struct{ n, capacity int }

func (f fakeCache) Len() int      { return f.n }
func (f fakeCache) Capacity() int { return f.capacity }

func TestCacheCollector(t *testing.T) {
	c := &CacheCollector{cache: fakeCache{n: 3, capacity: 50}}

	expected := `
# HELP excuses_cache_capacity Maximum number of entries in the response cache
# TYPE excuses_cache_capacity gauge
excuses_cache_capacity 50
# HELP excuses_cache_entries Current number of entries in the response cache
# TYPE excuses_cache_entries gauge
excuses_cache_entries 3
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collector output: %v", err)
	}
}

func TestRecordBeforeInitIsNoop(t *testing.T) {
	before := testutil.ToFloat64(excusesProduced.WithLabelValues(SourceFallback, "generic"))
	if initialized.Load() {
		t.Skip("metrics already initialised by another test")
	}
	RecordExcuse(SourceFallback, "generic")
	if got := testutil.ToFloat64(excusesProduced.WithLabelValues(SourceFallback, "generic")); got != before {
		t.Errorf("counter moved before Init: %v -> %v", before, got)
	}
}

func TestRecordAfterInit(t *testing.T) {
	Init(fakeCache{n: 1, capacity: 50})
	Init(fakeCache{n: 2, capacity: 50}) // second call is ignored

	before := testutil.ToFloat64(excusesProduced.WithLabelValues(SourceRemote, "specific"))
	RecordExcuse(SourceRemote, "specific")
	if got := testutil.ToFloat64(excusesProduced.WithLabelValues(SourceRemote, "specific")); got != before+1 {
		t.Errorf("excuses_produced_total = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(remoteFailures.WithLabelValues(FailureHTTP))
	RecordRemoteFailure(FailureHTTP)
	if got := testutil.ToFloat64(remoteFailures.WithLabelValues(FailureHTTP)); got != before+1 {
		t.Errorf("excuses_remote_failures_total = %v, want %v", got, before+1)
	}

	if _, err := prometheus.DefaultGatherer.Gather(); err != nil {
		t.Errorf("gather failed: %v", err)
	}
}
