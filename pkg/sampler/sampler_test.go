package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mountwatch/mountwatch/pkg/models"
	"github.com/mountwatch/mountwatch/pkg/mount"
)

func testConfig() models.SamplerConfig {
	return models.SamplerConfig{
		Interval:     10 * time.Millisecond,
		ProbeTimeout: time.Second,
		ProbePort:    445,
	}
}

func testRoster() *mount.Registry {
	reg := mount.NewRegistry()
	reg.Add(models.VolumeStatus{
		ID:         "vol1",
		Host:       "nas.local",
		MountPoint: "/mnt/vol1",
		State:      models.StateConnected,
	})

	return reg
}

func TestVolumeSampler_ProducesSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockProber(ctrl)
	reader := NewMockUsageReader(ctrl)

	prober.EXPECT().Probe(gomock.Any(), "nas.local", 445).Return(12.5, true).AnyTimes()
	reader.EXPECT().Usage(gomock.Any(), "/mnt/vol1").Return(DiskUsage{
		UsedBytes:  40,
		TotalBytes: 100,
		ReadBytes:  1000,
		WriteBytes: 500,
	}, nil).AnyTimes()

	s, err := NewVolumeSampler(testConfig(), testRoster(), prober, reader)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))

	defer func() { _ = s.Stop() }()

	select {
	case batch := <-s.Samples():
		require.Len(t, batch, 1)

		sample := batch[0]
		assert.Equal(t, "vol1", sample.VolumeID)
		assert.InDelta(t, 12.5, sample.LatencyMs, 1e-9)
		assert.True(t, sample.ConnectionSucceeded)
		assert.Equal(t, int64(40), sample.UsedBytes)
		assert.Equal(t, int64(100), sample.TotalBytes)
		// First observation has no counter delta to rate from.
		assert.Zero(t, sample.ReadBytesPerSec)
		assert.Zero(t, sample.WriteBytesPerSec)
		assert.False(t, sample.Timestamp.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a batch")
	}
}

func TestVolumeSampler_BatchCoversWholeRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockProber(ctrl)
	reader := NewMockUsageReader(ctrl)
	prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(5.0, true).AnyTimes()
	reader.EXPECT().Usage(gomock.Any(), gomock.Any()).Return(DiskUsage{UsedBytes: 10, TotalBytes: 100}, nil).AnyTimes()

	roster := testRoster()
	roster.Add(models.VolumeStatus{
		ID:         "vol2",
		Host:       "nas2.local",
		MountPoint: "/mnt/vol2",
		State:      models.StateConnected,
	})

	s, err := NewVolumeSampler(testConfig(), roster, prober, reader)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))

	defer func() { _ = s.Stop() }()

	// One cycle delivers one batch with a sample for each roster volume.
	select {
	case batch := <-s.Samples():
		require.Len(t, batch, 2)

		ids := []string{batch[0].VolumeID, batch[1].VolumeID}
		assert.ElementsMatch(t, []string{"vol1", "vol2"}, ids)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a batch")
	}
}

func TestVolumeSampler_StartTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockProber(ctrl)
	reader := NewMockUsageReader(ctrl)
	prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(1.0, true).AnyTimes()
	reader.EXPECT().Usage(gomock.Any(), gomock.Any()).Return(DiskUsage{}, nil).AnyTimes()

	s, err := NewVolumeSampler(testConfig(), testRoster(), prober, reader)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	assert.ErrorIs(t, s.Start(ctx), ErrAlreadyStarted)

	_ = s.Stop()
}

func TestVolumeSampler_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockProber(ctrl)
	reader := NewMockUsageReader(ctrl)
	prober.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(1.0, true).AnyTimes()
	reader.EXPECT().Usage(gomock.Any(), gomock.Any()).Return(DiskUsage{}, nil).AnyTimes()

	s, err := NewVolumeSampler(testConfig(), testRoster(), prober, reader)
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())

	// The sample channel closes once the loop exits; drain until then.
	deadline := time.After(time.Second)

	for {
		select {
		case _, open := <-s.Samples():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("sample channel never closed after Stop")
		}
	}
}

func TestVolumeSampler_RatesFromCounterDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewVolumeSampler(testConfig(), testRoster(), NewMockProber(ctrl), NewMockUsageReader(ctrl))
	require.NoError(t, err)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	read, write := s.rates("vol1", DiskUsage{ReadBytes: 1000, WriteBytes: 500}, base)
	assert.Zero(t, read, "first observation has no delta")
	assert.Zero(t, write)

	read, write = s.rates("vol1", DiskUsage{ReadBytes: 3000, WriteBytes: 1500}, base.Add(2*time.Second))
	assert.Equal(t, int64(1000), read)
	assert.Equal(t, int64(500), write)

	// Counter reset (e.g. remount) reads as zero, not a negative rate.
	read, write = s.rates("vol1", DiskUsage{ReadBytes: 100, WriteBytes: 50}, base.Add(3*time.Second))
	assert.Zero(t, read)
	assert.Zero(t, write)
}

func TestVolumeSampler_UsageErrorStillProbes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := NewMockProber(ctrl)
	reader := NewMockUsageReader(ctrl)

	prober.EXPECT().Probe(gomock.Any(), "nas.local", 445).Return(7.0, false).AnyTimes()
	reader.EXPECT().Usage(gomock.Any(), "/mnt/vol1").Return(DiskUsage{}, assert.AnError).AnyTimes()

	s, err := NewVolumeSampler(testConfig(), testRoster(), prober, reader)
	require.NoError(t, err)

	roster := testRoster()
	sample := s.sampleVolume(context.Background(), roster.List()[0])

	assert.False(t, sample.ConnectionSucceeded)
	assert.InDelta(t, 7.0, sample.LatencyMs, 1e-9)
	assert.Zero(t, sample.UsedBytes)
	assert.Zero(t, sample.TotalBytes)
}
