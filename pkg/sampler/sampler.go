// Package sampler pkg/sampler/sampler.go
package sampler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mountwatch/mountwatch/pkg/models"
	"github.com/mountwatch/mountwatch/pkg/mount"
)

var ErrAlreadyStarted = errors.New("sampler already started")

const batchChanBuffer = 16

// ioSnapshot remembers the previous cumulative counters for one volume so
// the next tick can derive a bytes-per-second rate from the delta.
type ioSnapshot struct {
	readBytes  uint64
	writeBytes uint64
	at         time.Time
}

// VolumeSampler is the canonical sample source: every tick it reads storage
// usage and probes reachability for each volume on the roster, then pushes
// the whole cycle's samples as one batch.
type VolumeSampler struct {
	cfg      models.SamplerConfig
	roster   mount.Lister
	prober   Prober
	reader   UsageReader
	samples  chan []models.VolumeSample
	done     chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	started  bool
	lastIO   map[string]ioSnapshot
	now      func() time.Time
}

var _ SampleSource = (*VolumeSampler)(nil)

func NewVolumeSampler(cfg models.SamplerConfig, roster mount.Lister, prober Prober, reader UsageReader) (*VolumeSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &VolumeSampler{
		cfg:     cfg,
		roster:  roster,
		prober:  prober,
		reader:  reader,
		samples: make(chan []models.VolumeSample, batchChanBuffer),
		done:    make(chan struct{}),
		lastIO:  make(map[string]ioSnapshot),
		now:     time.Now,
	}, nil
}

func (s *VolumeSampler) Start(ctx context.Context) error {
	s.mu.Lock()

	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}

	s.started = true
	s.mu.Unlock()

	go s.run(ctx)

	return nil
}

// Stop halts sampling. Safe to call more than once; a tick already in
// flight may complete, but no new tick begins afterwards.
func (s *VolumeSampler) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)
	})

	return nil
}

func (s *VolumeSampler) Samples() <-chan []models.VolumeSample {
	return s.samples
}

func (s *VolumeSampler) run(ctx context.Context) {
	defer close(s.samples)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	log.Printf("Volume sampler started with interval %v", s.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick samples every roster volume once and delivers the cycle as a single
// batch, so the consumer recomputes derived state once per cycle. Syscalls
// and dials happen before any lock is taken.
func (s *VolumeSampler) tick(ctx context.Context) {
	roster := s.roster.List()
	if len(roster) == 0 {
		return
	}

	batch := make([]models.VolumeSample, 0, len(roster))

	for _, volume := range roster {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		default:
		}

		batch = append(batch, s.sampleVolume(ctx, volume))
	}

	select {
	case s.samples <- batch:
	case <-ctx.Done():
	case <-s.done:
	}
}

func (s *VolumeSampler) sampleVolume(ctx context.Context, volume models.VolumeStatus) models.VolumeSample {
	now := s.now()

	sample := models.VolumeSample{
		VolumeID:  volume.ID,
		Timestamp: now,
	}

	latency, ok := s.prober.Probe(ctx, volume.Host, s.cfg.ProbePort)
	sample.LatencyMs = latency
	sample.ConnectionSucceeded = ok

	usage, err := s.reader.Usage(ctx, volume.MountPoint)
	if err != nil {
		log.Printf("Usage read failed for volume %s (%s): %v", volume.ID, volume.MountPoint, err)
		return sample.Clamped()
	}

	sample.UsedBytes = usage.UsedBytes
	sample.TotalBytes = usage.TotalBytes
	sample.ReadBytesPerSec, sample.WriteBytesPerSec = s.rates(volume.ID, usage, now)

	return sample.Clamped()
}

// rates derives bytes-per-second from the delta of cumulative counters. The
// first observation for a volume, and counter resets, read as zero.
func (s *VolumeSampler) rates(volumeID string, usage DiskUsage, now time.Time) (readBps, writeBps int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, seen := s.lastIO[volumeID]

	s.lastIO[volumeID] = ioSnapshot{
		readBytes:  usage.ReadBytes,
		writeBytes: usage.WriteBytes,
		at:         now,
	}

	if !seen {
		return 0, 0
	}

	elapsed := now.Sub(prev.at).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}

	if usage.ReadBytes >= prev.readBytes {
		readBps = int64(float64(usage.ReadBytes-prev.readBytes) / elapsed)
	}

	if usage.WriteBytes >= prev.writeBytes {
		writeBps = int64(float64(usage.WriteBytes-prev.writeBytes) / elapsed)
	}

	return readBps, writeBps
}
