package sampler

import (
	"context"

	"github.com/mountwatch/mountwatch/pkg/models"
)

//go:generate mockgen -destination=mock_sampler.go -package=sampler github.com/mountwatch/mountwatch/pkg/sampler Prober,UsageReader

// SampleSource produces one batch of per-volume samples per sampling
// cycle. The engine consumes the channel; it never polls the source.
type SampleSource interface {
	// Start begins periodic sampling. Returns an error if already started.
	Start(ctx context.Context) error

	// Stop halts sampling. Idempotent; no new sample acquisition begins
	// after Stop returns.
	Stop() error

	// Samples returns the channel batches are delivered on. Each batch
	// holds the samples from a single cycle. Closed after the production
	// loop exits.
	Samples() <-chan []models.VolumeSample
}

// Prober measures connection latency to a share host.
type Prober interface {
	// Probe dials the host and reports the connect latency in milliseconds
	// and whether the connection succeeded.
	Probe(ctx context.Context, host string, port int) (latencyMs float64, ok bool)
}

// DiskUsage is one reading of a mount point's storage and cumulative IO
// counters.
type DiskUsage struct {
	UsedBytes  int64
	TotalBytes int64
	ReadBytes  uint64 // cumulative since boot
	WriteBytes uint64 // cumulative since boot
}

// UsageReader reads storage usage and IO counters for a mount point.
type UsageReader interface {
	Usage(ctx context.Context, mountPoint string) (DiskUsage, error)
}
