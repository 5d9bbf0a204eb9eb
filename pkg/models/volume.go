// Package models pkg/models/volume.go
package models

import "time"

// MountState describes the connection state of a configured volume.
type MountState string

const (
	StateDisconnected MountState = "disconnected"
	StateConnecting   MountState = "connecting"
	StateConnected    MountState = "connected"
	StateError        MountState = "error"
)

// VolumeSample is one observation of a mounted volume at one instant.
// Timestamps are producer-supplied and expected to be non-decreasing per
// volume; the engine stores samples in insertion order regardless.
type VolumeSample struct {
	VolumeID            string    `json:"volume_id"`
	Timestamp           time.Time `json:"timestamp"`
	ReadBytesPerSec     int64     `json:"read_bytes_per_sec"`
	WriteBytesPerSec    int64     `json:"write_bytes_per_sec"`
	UsedBytes           int64     `json:"used_bytes"`
	TotalBytes          int64     `json:"total_bytes"`
	LatencyMs           float64   `json:"latency_ms"`
	ConnectionSucceeded bool      `json:"connection_succeeded"`
}

// Clamped returns a copy of the sample with out-of-range fields forced back
// into their documented ranges: negative rates and sizes become zero,
// UsedBytes is capped at TotalBytes, negative latency becomes zero.
func (s VolumeSample) Clamped() VolumeSample {
	if s.ReadBytesPerSec < 0 {
		s.ReadBytesPerSec = 0
	}

	if s.WriteBytesPerSec < 0 {
		s.WriteBytesPerSec = 0
	}

	if s.TotalBytes < 0 {
		s.TotalBytes = 0
	}

	if s.UsedBytes < 0 {
		s.UsedBytes = 0
	}

	if s.UsedBytes > s.TotalBytes {
		s.UsedBytes = s.TotalBytes
	}

	if s.LatencyMs < 0 {
		s.LatencyMs = 0
	}

	return s
}

// VolumeStatus is one roster entry: the current state of a configured or
// mounted volume as seen by consumers (badges, threshold aggregation).
type VolumeStatus struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Host       string        `json:"host"`
	SharePath  string        `json:"share_path"`
	MountPoint string        `json:"mount_point"`
	State      MountState    `json:"state"`
	LastError  string        `json:"last_error,omitempty"`
	UsedBytes  int64         `json:"used_bytes"`
	TotalBytes int64         `json:"total_bytes"`
	Health     HealthMetrics `json:"health"`
	LastSeen   time.Time     `json:"last_seen"`
}
