package history

import (
	"time"

	"github.com/mountwatch/mountwatch/pkg/models"
)

//go:generate mockgen -destination=mock_store.go -package=history github.com/mountwatch/mountwatch/pkg/history Store

// Store owns the per-volume sample histories. Appends come from the sample
// producer, reads from aggregation and UI consumers; implementations must be
// safe for concurrent use.
type Store interface {
	// Record appends a sample to the owning volume's history, creating the
	// history if the volume is new, and evicts samples past the horizon.
	Record(sample models.VolumeSample)

	// Query returns all retained samples for the volume whose timestamp is
	// within the window ending now, in insertion order. The result is a
	// snapshot; later mutation does not affect it. Unknown volumes and
	// non-positive windows yield an empty slice, never an error.
	Query(volumeID string, window time.Duration) []models.VolumeSample

	// Last returns the most recent sample for the volume, if any.
	Last(volumeID string) (models.VolumeSample, bool)

	// EvictExpired removes samples older than the retention horizon from
	// every volume's history.
	EvictExpired(now time.Time)

	// Horizon returns the configured retention horizon.
	Horizon() time.Duration

	// Volumes returns the IDs of all volumes with retained history.
	Volumes() []string

	// Len returns the number of retained samples for the volume.
	Len(volumeID string) int

	// Reset drops all histories.
	Reset()
}
