package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountwatch/mountwatch/pkg/models"
)

// fakeScanner returns canned results without touching the network.
type fakeScanner struct {
	results []Result
	scanned []Target
}

func (f *fakeScanner) Scan(_ context.Context, targets []Target) (<-chan Result, error) {
	f.scanned = targets

	out := make(chan Result, len(f.results))
	for _, r := range f.results {
		out <- r
	}

	close(out)

	return out, nil
}

func (f *fakeScanner) Stop() error { return nil }

func TestService_Discover(t *testing.T) {
	scanner := &fakeScanner{
		results: []Result{
			{Target: Target{Host: "192.168.1.2", Port: 445}, Available: true, RespTime: 3 * time.Millisecond},
			{Target: Target{Host: "192.168.1.1", Port: 445}, Available: true, RespTime: time.Millisecond},
			{Target: Target{Host: "192.168.1.1", Port: 139}, Available: false},
		},
	}

	svc, err := NewServiceWithScanner(models.DiscoveryConfig{
		Networks: []string{"192.168.1.0/30"},
		Ports:    []int{445, 139},
	}, scanner)
	require.NoError(t, err)

	shares, err := svc.Discover(context.Background())
	require.NoError(t, err)

	// 2 usable hosts x 2 ports swept.
	assert.Len(t, scanner.scanned, 4)

	require.Len(t, shares, 2)
	assert.Equal(t, "192.168.1.1", shares[0].Host, "shares sorted by host")
	assert.Equal(t, "192.168.1.2", shares[1].Host)
}

func TestService_InvalidConfig(t *testing.T) {
	_, err := NewService(models.DiscoveryConfig{})
	assert.ErrorIs(t, err, models.ErrNoNetworks)
}

func TestService_BadCIDR(t *testing.T) {
	svc, err := NewServiceWithScanner(models.DiscoveryConfig{
		Networks: []string{"bogus"},
	}, &fakeScanner{})
	require.NoError(t, err)

	_, err = svc.Discover(context.Background())
	assert.Error(t, err)
}
