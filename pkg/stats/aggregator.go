// Package stats derives current/average/peak throughput figures from a
// volume's retained history. Every query recomputes from a fresh history
// snapshot; there are no running accumulators that could drift from the
// store after eviction.
package stats

import (
	"time"

	"github.com/mountwatch/mountwatch/pkg/history"
	"github.com/mountwatch/mountwatch/pkg/models"
)

// Aggregator answers throughput queries against a history store. Unknown
// volumes and empty histories yield zero values, never errors: "no data yet"
// is a valid state.
type Aggregator struct {
	store history.Store
}

func NewAggregator(store history.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Current returns the read/write speed of the most recent sample.
func (a *Aggregator) Current(volumeID string) models.ThroughputStats {
	last, ok := a.store.Last(volumeID)
	if !ok {
		return models.ThroughputStats{}
	}

	return models.ThroughputStats{
		ReadBps:  float64(last.ReadBytesPerSec),
		WriteBps: float64(last.WriteBytesPerSec),
	}
}

// Average returns the arithmetic mean of read/write speed over the given
// window. A non-positive window means the full retained history.
func (a *Aggregator) Average(volumeID string, window time.Duration) models.ThroughputStats {
	samples := a.query(volumeID, window)
	if len(samples) == 0 {
		return models.ThroughputStats{}
	}

	var readSum, writeSum float64

	for _, s := range samples {
		readSum += float64(s.ReadBytesPerSec)
		writeSum += float64(s.WriteBytesPerSec)
	}

	n := float64(len(samples))

	return models.ThroughputStats{
		ReadBps:  readSum / n,
		WriteBps: writeSum / n,
	}
}

// Peak returns the maximum read speed and maximum write speed observed in
// the window. The two peaks are independent and need not come from the same
// sample.
func (a *Aggregator) Peak(volumeID string, window time.Duration) models.ThroughputStats {
	samples := a.query(volumeID, window)

	var peak models.ThroughputStats

	for _, s := range samples {
		if r := float64(s.ReadBytesPerSec); r > peak.ReadBps {
			peak.ReadBps = r
		}

		if w := float64(s.WriteBytesPerSec); w > peak.WriteBps {
			peak.WriteBps = w
		}
	}

	return peak
}

// Derived computes current, average, and peak in one pass for chart
// consumers that redraw frequently.
func (a *Aggregator) Derived(volumeID string, window time.Duration) models.DerivedStats {
	return models.DerivedStats{
		Current: a.Current(volumeID),
		Average: a.Average(volumeID, window),
		Peak:    a.Peak(volumeID, window),
	}
}

// SuccessRate returns the percentage of samples in the window whose
// connection probe succeeded. Empty history yields zero.
func (a *Aggregator) SuccessRate(volumeID string, window time.Duration) float64 {
	samples := a.query(volumeID, window)
	if len(samples) == 0 {
		return 0
	}

	succeeded := 0

	for _, s := range samples {
		if s.ConnectionSucceeded {
			succeeded++
		}
	}

	return float64(succeeded) / float64(len(samples)) * 100
}

func (a *Aggregator) query(volumeID string, window time.Duration) []models.VolumeSample {
	if window <= 0 {
		window = a.store.Horizon()
	}

	return a.store.Query(volumeID, window)
}
