// Package discovery pkg/discovery/service.go
package discovery

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/mountwatch/mountwatch/pkg/models"
)

// Service sweeps the configured networks for reachable SMB endpoints. It is
// the canonical implementation of the discovery collaborator; the engine
// itself never depends on it.
type Service struct {
	cfg     models.DiscoveryConfig
	scanner Scanner
}

func NewService(cfg models.DiscoveryConfig) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid discovery config: %w", err)
	}

	return &Service{
		cfg:     cfg,
		scanner: NewTCPScanner(cfg.Timeout, cfg.Concurrency, cfg.RateLimit),
	}, nil
}

// NewServiceWithScanner injects a scanner, for tests.
func NewServiceWithScanner(cfg models.DiscoveryConfig, scanner Scanner) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid discovery config: %w", err)
	}

	return &Service{cfg: cfg, scanner: scanner}, nil
}

// Discover expands the configured networks into SMB-port targets, sweeps
// them, and returns the reachable shares sorted by host. A host answering
// on several ports is reported once per port.
func (s *Service) Discover(ctx context.Context) ([]Share, error) {
	targets, err := s.generateTargets()
	if err != nil {
		return nil, err
	}

	log.Printf("Starting share discovery sweep with %d targets", len(targets))

	results, err := s.scanner.Scan(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	var shares []Share

	for r := range results {
		if !r.Available {
			continue
		}

		shares = append(shares, Share{
			Host:     r.Target.Host,
			Port:     r.Target.Port,
			RespTime: r.RespTime,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Host != shares[j].Host {
			return shares[i].Host < shares[j].Host
		}

		return shares[i].Port < shares[j].Port
	})

	log.Printf("Share discovery found %d endpoints", len(shares))

	return shares, nil
}

// Stop halts an in-flight sweep.
func (s *Service) Stop() error {
	return s.scanner.Stop()
}

func (s *Service) generateTargets() ([]Target, error) {
	var targets []Target

	for _, network := range s.cfg.Networks {
		ips, err := ExpandCIDR(network)
		if err != nil {
			return nil, fmt.Errorf("failed to expand CIDR %s: %w", network, err)
		}

		for _, ip := range ips {
			for _, port := range s.cfg.Ports {
				targets = append(targets, Target{Host: ip, Port: port})
			}
		}
	}

	return targets, nil
}
