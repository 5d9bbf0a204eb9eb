// Package monitor assembles one monitoring session: the history store, the
// volume roster, the derived-stat aggregators, and an optional sample
// source. Sessions are plain instances; nothing here is global, so tests
// and multiple dashboards can run isolated engines side by side.
package monitor

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mountwatch/mountwatch/pkg/health"
	"github.com/mountwatch/mountwatch/pkg/history"
	"github.com/mountwatch/mountwatch/pkg/models"
	"github.com/mountwatch/mountwatch/pkg/mount"
	"github.com/mountwatch/mountwatch/pkg/sampler"
	"github.com/mountwatch/mountwatch/pkg/stats"
	"github.com/mountwatch/mountwatch/pkg/threshold"
)

var (
	ErrAlreadyStarted = errors.New("monitor already started")
	ErrNilSource      = errors.New("sample source is nil")
)

// Monitor is one monitoring session.
type Monitor struct {
	store      history.Store
	roster     *mount.Registry
	stats      *stats.Aggregator
	thresholds *threshold.Aggregator

	mu      sync.Mutex
	source  sampler.SampleSource
	started bool

	done     chan struct{}
	stopOnce sync.Once
}

// NewMonitor creates a session from a validated config.
func NewMonitor(cfg models.EngineConfig) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := history.NewMemoryStore(cfg.History.Retention)

	return &Monitor{
		store:      store,
		roster:     mount.NewRegistry(),
		stats:      stats.NewAggregator(store),
		thresholds: threshold.NewAggregator(),
		done:       make(chan struct{}),
	}, nil
}

// NewMonitorWithStore creates a session around an existing store, for
// callers that need a custom retention or clock.
func NewMonitorWithStore(store history.Store) *Monitor {
	return &Monitor{
		store:      store,
		roster:     mount.NewRegistry(),
		stats:      stats.NewAggregator(store),
		thresholds: threshold.NewAggregator(),
		done:       make(chan struct{}),
	}
}

// Roster exposes the volume roster so callers can wire a sampler to it.
func (m *Monitor) Roster() *mount.Registry {
	return m.roster
}

// AddVolume registers a volume and recomputes threshold counts.
func (m *Monitor) AddVolume(volume models.VolumeStatus) {
	m.roster.Add(volume)
	m.thresholds.Recompute(m.roster.List())
}

// RemoveVolume drops a volume from the roster and recomputes counts. Its
// history ages out on its own.
func (m *Monitor) RemoveVolume(volumeID string) {
	m.roster.Remove(volumeID)
	m.thresholds.Recompute(m.roster.List())
}

// SetMountState records a mount-service state transition (connected,
// disconnected, error) and recomputes counts.
func (m *Monitor) SetMountState(volumeID string, state models.MountState, lastError string) {
	m.roster.Update(volumeID, func(v *models.VolumeStatus) {
		v.State = state
		v.LastError = lastError
	})

	m.thresholds.Recompute(m.roster.List())
}

// Start begins consuming the source's sample stream. Samples that arrive
// within one production cycle are applied as a batch, and threshold counts
// are recomputed once per batch, never per volume.
func (m *Monitor) Start(ctx context.Context, source sampler.SampleSource) error {
	if source == nil {
		return ErrNilSource
	}

	m.mu.Lock()

	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}

	m.started = true
	m.source = source
	m.mu.Unlock()

	if err := source.Start(ctx); err != nil {
		return err
	}

	go m.consume(ctx, source)

	log.Printf("Monitor started")

	return nil
}

// Stop halts consumption and the source. Idempotent; history is not
// mutated after Stop returns and in-flight samples are dropped.
func (m *Monitor) Stop() error {
	m.stopOnce.Do(func() {
		close(m.done)

		m.mu.Lock()
		source := m.source
		m.mu.Unlock()

		if source != nil {
			if err := source.Stop(); err != nil {
				log.Printf("Failed to stop sample source: %v", err)
			}
		}

		log.Printf("Monitor stopped")
	})

	return nil
}

func (m *Monitor) consume(ctx context.Context, source sampler.SampleSource) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case batch, ok := <-source.Samples():
			if !ok {
				return
			}

			select {
			case <-m.done:
				return
			default:
			}

			// One batch is one production cycle, so the threshold
			// recomputation sees a consistent cross-volume snapshot.
			m.Apply(batch...)
		}
	}
}

// Apply ingests samples synchronously: clamp, record to history (which
// self-evicts), refresh the roster, then recompute threshold counts once
// for the whole batch.
func (m *Monitor) Apply(rawSamples ...models.VolumeSample) {
	if len(rawSamples) == 0 {
		return
	}

	for _, raw := range rawSamples {
		s := raw.Clamped()
		m.store.Record(s)
		m.observe(s)
	}

	m.thresholds.Recompute(m.roster.List())
}

// observe folds one sample into the roster entry. Samples for volumes not
// on the roster still land in history but change no counts.
func (m *Monitor) observe(s models.VolumeSample) {
	successRate := m.stats.SuccessRate(s.VolumeID, 0)

	m.roster.Update(s.VolumeID, func(v *models.VolumeStatus) {
		v.UsedBytes = s.UsedBytes
		v.TotalBytes = s.TotalBytes
		v.LastSeen = s.Timestamp
		v.Health = health.NewMetrics(s.LatencyMs, successRate)

		// A deliberately unmounted volume stays unmounted no matter what
		// the reachability probe says.
		if v.State == models.StateDisconnected {
			return
		}

		if s.ConnectionSucceeded {
			v.State = models.StateConnected
			v.LastError = ""
		} else {
			v.State = models.StateError
			v.LastError = "connection probe failed"
		}
	})
}

// Stats returns current/average/peak throughput for the volume. A
// non-positive window means the full retained history.
func (m *Monitor) Stats(volumeID string, window time.Duration) models.DerivedStats {
	return m.stats.Derived(volumeID, window)
}

// History returns the retained samples in the window, for chart consumers.
func (m *Monitor) History(volumeID string, window time.Duration) []models.VolumeSample {
	if window <= 0 {
		window = m.store.Horizon()
	}

	return m.store.Query(volumeID, window)
}

// Health returns the volume's latest health metrics; zero-valued for
// unknown volumes.
func (m *Monitor) Health(volumeID string) models.HealthMetrics {
	v, ok := m.roster.Status(volumeID)
	if !ok {
		return models.HealthMetrics{}
	}

	return v.Health
}

// Usage returns the volume's storage usage percentage and its
// classification; zero/normal for unknown volumes.
func (m *Monitor) Usage(volumeID string) (float64, models.UsageLevel) {
	v, ok := m.roster.Status(volumeID)
	if !ok {
		return 0, models.UsageNormal
	}

	pct := health.UsagePercent(v.UsedBytes, v.TotalBytes)

	return pct, health.ClassifyUsage(pct)
}

// Counts returns the latest threshold counts.
func (m *Monitor) Counts() models.ThresholdCounts {
	return m.thresholds.Current()
}

// OnCountsChange subscribes to threshold-count changes; the returned func
// cancels the subscription.
func (m *Monitor) OnCountsChange(fn threshold.Subscriber) func() {
	return m.thresholds.Subscribe(fn)
}
