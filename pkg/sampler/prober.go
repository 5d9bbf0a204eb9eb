// Package sampler pkg/sampler/prober.go
package sampler

import (
	"context"
	"log"
	"net"
	"strconv"
	"time"
)

// TCPProber measures share reachability by timing a TCP connect to the SMB
// port. The dial itself is the latency measurement.
type TCPProber struct {
	timeout time.Duration
}

var _ Prober = (*TCPProber)(nil)

func NewTCPProber(timeout time.Duration) *TCPProber {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &TCPProber{timeout: timeout}
}

func (p *TCPProber) Probe(ctx context.Context, host string, port int) (float64, bool) {
	connCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var d net.Dialer

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	start := time.Now()

	conn, err := d.DialContext(connCtx, "tcp", addr)
	latency := float64(time.Since(start)) / float64(time.Millisecond)

	if err != nil {
		return latency, false
	}

	if err := conn.Close(); err != nil {
		log.Printf("Error closing probe connection to %s: %v", addr, err)
	}

	return latency, true
}
