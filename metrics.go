package geopattern

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDiscover is called after each discovery run.
	// points is the number of onsets analysed, groups the number of pattern
	// groups returned, err is nil if successful.
	RecordDiscover(points, groups int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// matches is the number of occurrences found.
	RecordSearch(matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDiscover(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DiscoverCount      atomic.Int64
	DiscoverErrors     atomic.Int64
	DiscoverPoints     atomic.Int64
	DiscoverGroups     atomic.Int64
	DiscoverTotalNanos atomic.Int64
	SearchCount        atomic.Int64
	SearchErrors       atomic.Int64
	SearchMatches      atomic.Int64
	SearchTotalNanos   atomic.Int64
}

// RecordDiscover implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDiscover(points, groups int, duration time.Duration, err error) {
	b.DiscoverCount.Add(1)
	b.DiscoverTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DiscoverErrors.Add(1)
		return
	}
	b.DiscoverPoints.Add(int64(points))
	b.DiscoverGroups.Add(int64(groups))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(matches int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchMatches.Add(int64(matches))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DiscoverCount:    b.DiscoverCount.Load(),
		DiscoverErrors:   b.DiscoverErrors.Load(),
		DiscoverPoints:   b.DiscoverPoints.Load(),
		DiscoverGroups:   b.DiscoverGroups.Load(),
		DiscoverAvgNanos: avg(b.DiscoverTotalNanos.Load(), b.DiscoverCount.Load()),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchMatches:    b.SearchMatches.Load(),
		SearchAvgNanos:   avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DiscoverCount    int64
	DiscoverErrors   int64
	DiscoverPoints   int64
	DiscoverGroups   int64
	DiscoverAvgNanos int64
	SearchCount      int64
	SearchErrors     int64
	SearchMatches    int64
	SearchAvgNanos   int64
}
