// Package mount pkg/mount/registry.go
package mount

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mountwatch/mountwatch/pkg/models"
)

var ErrUnknownVolume = errors.New("unknown volume")

// Registry is an in-memory roster of configured volumes. All reads hand out
// copies, so no caller can mutate roster state behind the lock.
type Registry struct {
	mu      sync.RWMutex
	volumes map[string]models.VolumeStatus
}

var _ Manager = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		volumes: make(map[string]models.VolumeStatus),
	}
}

// Add inserts or replaces a roster entry. New entries without a state start
// connecting, so the first successful sample can promote them to connected.
func (r *Registry) Add(volume models.VolumeStatus) {
	if volume.State == "" {
		volume.State = models.StateConnecting
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.volumes[volume.ID] = volume
}

// Remove drops a roster entry. Removing an unknown volume is a no-op.
func (r *Registry) Remove(volumeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.volumes, volumeID)
}

func (r *Registry) Mount(_ context.Context, volume models.VolumeStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.volumes[volume.ID]
	if !ok {
		existing = volume
	}

	existing.State = models.StateConnected
	existing.LastError = ""
	r.volumes[volume.ID] = existing

	return nil
}

func (r *Registry) Unmount(_ context.Context, volumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.volumes[volumeID]
	if !ok {
		return ErrUnknownVolume
	}

	existing.State = models.StateDisconnected
	r.volumes[volumeID] = existing

	return nil
}

func (r *Registry) Status(volumeID string) (models.VolumeStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.volumes[volumeID]

	return v, ok
}

// List returns the roster sorted by volume ID for deterministic iteration.
func (r *Registry) List() []models.VolumeStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.VolumeStatus, 0, len(r.volumes))
	for _, v := range r.volumes {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Update applies fn to the roster entry under the lock. Unknown volumes are
// a no-op, matching the engine's "missing volume is not an error" policy.
func (r *Registry) Update(volumeID string, fn func(*models.VolumeStatus)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.volumes[volumeID]
	if !ok {
		return
	}

	fn(&v)
	r.volumes[volumeID] = v
}
