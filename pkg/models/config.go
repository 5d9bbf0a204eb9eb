// Package models pkg/models/config.go
package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidRetention   = errors.New("history retention must be positive")
	ErrInvalidInterval    = errors.New("sampler interval must be positive")
	ErrInvalidProbePort   = errors.New("probe port must be in range 1-65535")
	ErrNoNetworks         = errors.New("at least one network is required")
	ErrInvalidConcurrency = errors.New("concurrency must be positive")
)

const (
	// DefaultRetention is a superset of the display windows the dashboard
	// offers (60s, 300s, 3600s).
	DefaultRetention = time.Hour

	// DefaultSMBPort is the port probed for share reachability.
	DefaultSMBPort = 445

	// NetBIOSPort is the legacy SMB-over-NetBIOS port, swept alongside 445
	// during discovery.
	NetBIOSPort = 139
)

// HistoryConfig bounds the per-volume sample history.
type HistoryConfig struct {
	Retention time.Duration `json:"retention"`
}

func (c *HistoryConfig) Validate() error {
	if c.Retention == 0 {
		c.Retention = DefaultRetention
	}

	if c.Retention < 0 {
		return ErrInvalidRetention
	}

	return nil
}

// SamplerConfig configures the periodic sample producer.
type SamplerConfig struct {
	Interval     time.Duration `json:"interval"`
	ProbeTimeout time.Duration `json:"probe_timeout"`
	ProbePort    int           `json:"probe_port"`
}

func (c *SamplerConfig) Validate() error {
	if c.Interval == 0 {
		c.Interval = time.Second
	}

	if c.Interval < 0 {
		return ErrInvalidInterval
	}

	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 2 * time.Second
	}

	if c.ProbePort == 0 {
		c.ProbePort = DefaultSMBPort
	}

	if c.ProbePort < 1 || c.ProbePort > 65535 {
		return ErrInvalidProbePort
	}

	return nil
}

// DiscoveryConfig configures the share-discovery sweep.
type DiscoveryConfig struct {
	Networks    []string      `json:"networks"`
	Ports       []int         `json:"ports"`
	Timeout     time.Duration `json:"timeout"`
	Concurrency int           `json:"concurrency"`
	RateLimit   int           `json:"rate_limit"` // probes per second, 0 = unlimited
}

func (c *DiscoveryConfig) Validate() error {
	if len(c.Networks) == 0 {
		return ErrNoNetworks
	}

	if len(c.Ports) == 0 {
		c.Ports = []int{DefaultSMBPort, NetBIOSPort}
	}

	if c.Timeout <= 0 {
		c.Timeout = 2 * time.Second
	}

	if c.Concurrency == 0 {
		c.Concurrency = 20
	}

	if c.Concurrency < 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// EngineConfig is the top-level configuration for one monitoring session.
type EngineConfig struct {
	History HistoryConfig `json:"history"`
	Sampler SamplerConfig `json:"sampler"`
}

func (c *EngineConfig) Validate() error {
	if err := c.History.Validate(); err != nil {
		return err
	}

	return c.Sampler.Validate()
}
