// Package models pkg/models/stats.go
package models

// ThroughputStats holds a read/write speed pair in bytes per second.
type ThroughputStats struct {
	ReadBps  float64 `json:"read_bps"`
	WriteBps float64 `json:"write_bps"`
}

// DerivedStats is a read-only snapshot of throughput figures derived from a
// volume's retained history. Zero-valued when the volume has no samples.
type DerivedStats struct {
	Current ThroughputStats `json:"current"`
	Average ThroughputStats `json:"average"`
	Peak    ThroughputStats `json:"peak"`
}

// HealthMetrics summarizes connection health for one volume.
// HealthScore and SuccessRate are percentages in [0,100], LatencyMs >= 0.
// Build instances through health.NewMetrics so the ranges always hold.
type HealthMetrics struct {
	HealthScore float64 `json:"health_score"`
	LatencyMs   float64 `json:"latency_ms"`
	SuccessRate float64 `json:"success_rate"`
}

// UsageLevel is the severity classification of storage utilization.
type UsageLevel string

const (
	UsageNormal   UsageLevel = "normal"
	UsageWarning  UsageLevel = "warning"
	UsageCritical UsageLevel = "critical"
)

// ThresholdCounts is the system-wide derived aggregate that drives badge and
// alert consumers. It is always a pure function of the current roster.
type ThresholdCounts struct {
	MountedVolumeCount  int `json:"mounted_volume_count"`
	ErrorCount          int `json:"error_count"`
	StorageWarningCount int `json:"storage_warning_count"`
}

// Equal reports whether two count snapshots are field-for-field identical.
func (c ThresholdCounts) Equal(other ThresholdCounts) bool {
	return c == other
}
