package mount

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mountwatch/mountwatch/pkg/models"
)

func TestRegistry_AddAndList(t *testing.T) {
	reg := NewRegistry()

	reg.Add(models.VolumeStatus{ID: "b", Name: "Backup"})
	reg.Add(models.VolumeStatus{ID: "a", Name: "Archive"})

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID, "list must be sorted by ID")
	assert.Equal(t, models.StateConnecting, list[0].State, "new entries start connecting")
}

func TestRegistry_MountUnmount(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	reg.Add(models.VolumeStatus{ID: "a", State: models.StateError, LastError: "timeout"})

	require.NoError(t, reg.Mount(ctx, models.VolumeStatus{ID: "a"}))

	status, ok := reg.Status("a")
	require.True(t, ok)
	assert.Equal(t, models.StateConnected, status.State)
	assert.Empty(t, status.LastError, "mounting clears the last error")

	require.NoError(t, reg.Unmount(ctx, "a"))

	status, _ = reg.Status("a")
	assert.Equal(t, models.StateDisconnected, status.State)
}

func TestRegistry_UnmountUnknown(t *testing.T) {
	reg := NewRegistry()

	err := reg.Unmount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownVolume)
}

func TestRegistry_MountUnknownCreatesEntry(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Mount(context.Background(), models.VolumeStatus{ID: "new", Host: "nas.local"}))

	status, ok := reg.Status("new")
	require.True(t, ok)
	assert.Equal(t, models.StateConnected, status.State)
	assert.Equal(t, "nas.local", status.Host)
}

func TestRegistry_ListReturnsCopies(t *testing.T) {
	reg := NewRegistry()
	reg.Add(models.VolumeStatus{ID: "a", UsedBytes: 10})

	list := reg.List()
	list[0].UsedBytes = 999

	status, _ := reg.Status("a")
	assert.Equal(t, int64(10), status.UsedBytes)
}

func TestRegistry_Update(t *testing.T) {
	reg := NewRegistry()
	reg.Add(models.VolumeStatus{ID: "a"})

	reg.Update("a", func(v *models.VolumeStatus) {
		v.UsedBytes = 42
		v.State = models.StateConnected
	})

	status, _ := reg.Status("a")
	assert.Equal(t, int64(42), status.UsedBytes)
	assert.Equal(t, models.StateConnected, status.State)

	// Updating an unknown volume is a no-op, not a panic.
	reg.Update("missing", func(v *models.VolumeStatus) {
		v.UsedBytes = 1
	})
}

func TestRegistry_Remove(t *testing.T) {
	reg := NewRegistry()
	reg.Add(models.VolumeStatus{ID: "a"})

	reg.Remove("a")
	reg.Remove("a") // no-op

	_, ok := reg.Status("a")
	assert.False(t, ok)
}
