// Package history pkg/history/memory_store.go
package history

import (
	"sync"
	"time"

	"github.com/mountwatch/mountwatch/pkg/models"
)

// volumeHistory holds one volume's retained samples. Each volume gets its
// own lock so producers for independent volumes never contend.
type volumeHistory struct {
	mu      sync.RWMutex
	samples []models.VolumeSample
}

// MemoryStore implements Store with per-volume bounded slices. Samples older
// than the retention horizon are trimmed on every Record, keeping the store
// self-bounding at an amortized O(1) per sample.
type MemoryStore struct {
	volumes   sync.Map // volumeID -> *volumeHistory
	retention time.Duration
	now       func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store with the given retention horizon.
// A non-positive retention falls back to the default.
func NewMemoryStore(retention time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(retention, time.Now)
}

// NewMemoryStoreWithClock creates a store that reads the current time from
// the supplied clock. Tests use this to pin eviction cutoffs.
func NewMemoryStoreWithClock(retention time.Duration, clock func() time.Time) *MemoryStore {
	if retention <= 0 {
		retention = models.DefaultRetention
	}

	return &MemoryStore{
		retention: retention,
		now:       clock,
	}
}

func (s *MemoryStore) Record(sample models.VolumeSample) {
	vh := s.historyFor(sample.VolumeID)

	cutoff := s.now().Add(-s.retention)

	vh.mu.Lock()
	defer vh.mu.Unlock()

	vh.samples = append(vh.samples, sample)
	vh.trim(cutoff)
}

func (s *MemoryStore) Query(volumeID string, window time.Duration) []models.VolumeSample {
	if window <= 0 {
		return []models.VolumeSample{}
	}

	v, ok := s.volumes.Load(volumeID)
	if !ok {
		return []models.VolumeSample{}
	}

	vh := v.(*volumeHistory)
	cutoff := s.now().Add(-window)

	vh.mu.RLock()
	defer vh.mu.RUnlock()

	out := make([]models.VolumeSample, 0, len(vh.samples))

	for _, sample := range vh.samples {
		if !sample.Timestamp.Before(cutoff) {
			out = append(out, sample)
		}
	}

	return out
}

func (s *MemoryStore) Last(volumeID string) (models.VolumeSample, bool) {
	v, ok := s.volumes.Load(volumeID)
	if !ok {
		return models.VolumeSample{}, false
	}

	vh := v.(*volumeHistory)

	vh.mu.RLock()
	defer vh.mu.RUnlock()

	if len(vh.samples) == 0 {
		return models.VolumeSample{}, false
	}

	return vh.samples[len(vh.samples)-1], true
}

func (s *MemoryStore) EvictExpired(now time.Time) {
	cutoff := now.Add(-s.retention)

	s.volumes.Range(func(_, v interface{}) bool {
		vh := v.(*volumeHistory)

		vh.mu.Lock()
		vh.trim(cutoff)
		vh.mu.Unlock()

		return true
	})
}

func (s *MemoryStore) Horizon() time.Duration {
	return s.retention
}

func (s *MemoryStore) Volumes() []string {
	ids := make([]string, 0)

	s.volumes.Range(func(k, _ interface{}) bool {
		ids = append(ids, k.(string))
		return true
	})

	return ids
}

func (s *MemoryStore) Len(volumeID string) int {
	v, ok := s.volumes.Load(volumeID)
	if !ok {
		return 0
	}

	vh := v.(*volumeHistory)

	vh.mu.RLock()
	defer vh.mu.RUnlock()

	return len(vh.samples)
}

func (s *MemoryStore) Reset() {
	s.volumes.Range(func(k, _ interface{}) bool {
		s.volumes.Delete(k)
		return true
	})
}

func (s *MemoryStore) historyFor(volumeID string) *volumeHistory {
	v, _ := s.volumes.LoadOrStore(volumeID, &volumeHistory{
		samples: make([]models.VolumeSample, 0, 16),
	})

	return v.(*volumeHistory)
}

// trim drops the expired front prefix. Samples are insertion-ordered with
// non-decreasing timestamps by producer contract, so expired samples sit at
// the front. An out-of-order straggler recorded behind the first retained
// sample lingers until it reaches the front; the cutoff filter in Query
// keeps it out of results meanwhile. Caller holds the lock.
func (vh *volumeHistory) trim(cutoff time.Time) {
	i := 0
	for i < len(vh.samples) && vh.samples[i].Timestamp.Before(cutoff) {
		i++
	}

	if i > 0 {
		vh.samples = vh.samples[i:]
	}
}
