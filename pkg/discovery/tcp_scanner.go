// Package discovery pkg/discovery/tcp_scanner.go
package discovery

import (
	"context"
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// TCPScanner probes targets with a bounded worker pool. Dials are paced by
// an optional rate limiter so a sweep does not flood the local network.
type TCPScanner struct {
	timeout     time.Duration
	concurrency int
	limiter     *rate.Limiter
	done        chan struct{}
	stopOnce    sync.Once
}

var _ Scanner = (*TCPScanner)(nil)

// NewTCPScanner creates a scanner. perSecond <= 0 disables pacing.
func NewTCPScanner(timeout time.Duration, concurrency, perSecond int) *TCPScanner {
	if concurrency <= 0 {
		concurrency = 20
	}

	var limiter *rate.Limiter
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), concurrency)
	}

	return &TCPScanner{
		timeout:     timeout,
		concurrency: concurrency,
		limiter:     limiter,
		done:        make(chan struct{}),
	}
}

func (s *TCPScanner) Stop() error {
	s.stopOnce.Do(func() {
		close(s.done)
	})

	return nil
}

func (s *TCPScanner) Scan(ctx context.Context, targets []Target) (<-chan Result, error) {
	results := make(chan Result, len(targets))
	targetChan := make(chan Target, s.concurrency)

	scanCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup

	s.startWorkerPool(scanCtx, &wg, targetChan, results)

	go s.feedTargets(scanCtx, targets, targetChan)

	go func() {
		wg.Wait()
		cancel()
		close(results)
	}()

	return results, nil
}

func (s *TCPScanner) startWorkerPool(ctx context.Context, wg *sync.WaitGroup, targetChan chan Target, results chan Result) {
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)

		go s.runWorker(ctx, wg, targetChan, results)
	}
}

func (s *TCPScanner) runWorker(ctx context.Context, wg *sync.WaitGroup, targetChan chan Target, results chan Result) {
	defer wg.Done()

	for {
		select {
		case target, ok := <-targetChan:
			if !ok {
				return
			}

			s.scanTarget(ctx, target, results)
		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}

func (s *TCPScanner) feedTargets(ctx context.Context, targets []Target, targetChan chan Target) {
	defer close(targetChan)

	for _, target := range targets {
		select {
		case targetChan <- target:
		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}

func (s *TCPScanner) scanTarget(ctx context.Context, target Target, results chan<- Result) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}
	}

	result := Result{Target: target}

	connCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var d net.Dialer

	addr := net.JoinHostPort(target.Host, strconv.Itoa(target.Port))

	start := time.Now()

	conn, err := d.DialContext(connCtx, "tcp", addr)
	result.RespTime = time.Since(start)

	if err != nil {
		result.Error = err
	} else {
		result.Available = true

		if err := conn.Close(); err != nil {
			log.Printf("Error closing connection to %s: %v", addr, err)
		}
	}

	select {
	case results <- result:
	case <-ctx.Done():
	case <-s.done:
	}
}
