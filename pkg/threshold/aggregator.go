// Package threshold recomputes system-wide derived counts from the current
// volume roster and pushes them to badge/alert subscribers, emitting only
// when something actually changed.
package threshold

import (
	"sync"

	"github.com/mountwatch/mountwatch/pkg/health"
	"github.com/mountwatch/mountwatch/pkg/models"
)

// Subscriber receives a counts snapshot whenever it differs from the
// previously emitted one.
type Subscriber func(models.ThresholdCounts)

// Aggregator holds the latest ThresholdCounts. The counts are never
// maintained incrementally: every Recompute starts from the full roster
// snapshot, so partial updates cannot drift.
type Aggregator struct {
	mu      sync.Mutex
	current models.ThresholdCounts
	emitted bool
	subs    map[int]Subscriber
	nextSub int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		subs: make(map[int]Subscriber),
	}
}

// Recompute derives fresh counts from the roster and notifies subscribers
// if at least one field changed since the last emission. The first
// recomputation always emits. Returns the new counts.
func (a *Aggregator) Recompute(roster []models.VolumeStatus) models.ThresholdCounts {
	counts := Compute(roster)

	a.mu.Lock()

	changed := !a.emitted || !counts.Equal(a.current)
	a.current = counts
	a.emitted = true

	var subs []Subscriber

	if changed {
		subs = make([]Subscriber, 0, len(a.subs))
		for _, fn := range a.subs {
			subs = append(subs, fn)
		}
	}

	a.mu.Unlock()

	// Notify outside the lock so a subscriber may query the aggregator.
	for _, fn := range subs {
		fn(counts)
	}

	return counts
}

// Current returns the last computed counts.
func (a *Aggregator) Current() models.ThresholdCounts {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current
}

// Subscribe registers a change listener and returns its cancel func.
// Cancel is idempotent.
func (a *Aggregator) Subscribe(fn Subscriber) func() {
	a.mu.Lock()

	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn

	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		delete(a.subs, id)
	}
}

// Compute derives ThresholdCounts from a roster snapshot. Pure function.
func Compute(roster []models.VolumeStatus) models.ThresholdCounts {
	var counts models.ThresholdCounts

	for i := range roster {
		v := &roster[i]

		switch v.State {
		case models.StateConnected:
			counts.MountedVolumeCount++
		case models.StateError:
			counts.ErrorCount++
		case models.StateConnecting, models.StateDisconnected:
		}

		pct := health.UsagePercent(v.UsedBytes, v.TotalBytes)
		if health.ClassifyUsage(pct) != models.UsageNormal {
			counts.StorageWarningCount++
		}
	}

	return counts
}
