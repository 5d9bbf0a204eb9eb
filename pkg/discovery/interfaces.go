package discovery

import (
	"context"
	"time"
)

// Target is one host:port probe candidate.
type Target struct {
	Host string
	Port int
}

// Result is the outcome of probing one target.
type Result struct {
	Target    Target
	Available bool
	RespTime  time.Duration
	Error     error
}

// Share is a discovered SMB endpoint.
type Share struct {
	Host     string        `json:"host"`
	Port     int           `json:"port"`
	RespTime time.Duration `json:"response_time"`
}

// Scanner probes a set of targets and streams results back.
type Scanner interface {
	// Scan probes the targets and returns results through the channel. The
	// channel closes when all targets have been probed or the scan is
	// stopped.
	Scan(ctx context.Context, targets []Target) (<-chan Result, error)

	// Stop halts any in-flight scan. Idempotent.
	Stop() error
}
