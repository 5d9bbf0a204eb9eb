// Package health derives connection-health scores and storage usage
// classifications. Everything here is a pure function: out-of-range inputs
// are clamped, degenerate inputs (zero capacity) yield defined zero results.
package health

import "github.com/mountwatch/mountwatch/pkg/models"

const (
	// Latency anchors for the health score: at or below the floor latency
	// contributes a full score, at or above the ceiling it contributes zero,
	// linear in between.
	latencyFloorMs = 100.0
	latencyCeilMs  = 500.0

	successWeight = 0.7
	latencyWeight = 0.3

	usageWarningPct  = 80.0
	usageCriticalPct = 95.0

	// notifyPct is the notification sub-threshold; intentionally distinct
	// from the critical classification boundary.
	notifyPct = 90.0
)

// Score combines latency and connection success rate into a composite
// health score in [0,100]. Inputs outside their ranges are clamped, not
// rejected: the scorer summarizes upstream data, it does not validate it.
func Score(latencyMs, successRatePercent float64) float64 {
	latencyScore := latencyScoreFor(latencyMs)
	successRate := clamp(successRatePercent, 0, 100)

	combined := successRate*successWeight + latencyScore*latencyWeight

	return clamp(combined, 0, 100)
}

func latencyScoreFor(latencyMs float64) float64 {
	switch {
	case latencyMs <= latencyFloorMs:
		return 100
	case latencyMs >= latencyCeilMs:
		return 0
	default:
		return 100 - (latencyMs-latencyFloorMs)/4
	}
}

// NewMetrics builds a HealthMetrics snapshot with every field clamped into
// its documented range.
func NewMetrics(latencyMs, successRatePercent float64) models.HealthMetrics {
	if latencyMs < 0 {
		latencyMs = 0
	}

	successRate := clamp(successRatePercent, 0, 100)

	return models.HealthMetrics{
		HealthScore: Score(latencyMs, successRate),
		LatencyMs:   latencyMs,
		SuccessRate: successRate,
	}
}

// UsagePercent converts used/total bytes to a percentage. Zero capacity is
// defined as 0%, never NaN or Inf.
func UsagePercent(usedBytes, totalBytes int64) float64 {
	if totalBytes <= 0 {
		return 0
	}

	if usedBytes <= 0 {
		return 0
	}

	if usedBytes > totalBytes {
		usedBytes = totalBytes
	}

	return float64(usedBytes) / float64(totalBytes) * 100
}

// ClassifyUsage maps a usage percentage to its severity level. The
// boundaries are exact: 80.0 is already warning, 95.0 is already critical.
func ClassifyUsage(pct float64) models.UsageLevel {
	switch {
	case pct >= usageCriticalPct:
		return models.UsageCritical
	case pct >= usageWarningPct:
		return models.UsageWarning
	default:
		return models.UsageNormal
	}
}

// ExceedsNotifyThreshold reports whether usage crosses the notification
// sub-threshold (90%). This is a separate knob from the 95% critical
// classification.
func ExceedsNotifyThreshold(pct float64) bool {
	return pct > notifyPct
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
