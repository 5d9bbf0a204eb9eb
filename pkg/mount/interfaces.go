package mount

import (
	"context"

	"github.com/mountwatch/mountwatch/pkg/models"
)

//go:generate mockgen -destination=mock_mount.go -package=mount github.com/mountwatch/mountwatch/pkg/mount Manager

// Manager is the injected mount-service collaborator. The implementation
// that performs real mount/unmount system calls lives outside this engine;
// Registry provides the in-memory roster the engine and tests drive.
type Manager interface {
	// Mount transitions the volume toward StateConnected.
	Mount(ctx context.Context, volume models.VolumeStatus) error

	// Unmount transitions the volume to StateDisconnected.
	Unmount(ctx context.Context, volumeID string) error

	// Status returns the roster entry for one volume.
	Status(volumeID string) (models.VolumeStatus, bool)

	// List returns a snapshot of the full roster.
	List() []models.VolumeStatus
}

// Lister is the read-only roster view the sampler needs.
type Lister interface {
	List() []models.VolumeStatus
}
