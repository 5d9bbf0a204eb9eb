// Package sampler pkg/sampler/disk_reader.go
package sampler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskUsageReader reads storage usage and IO counters through gopsutil.
type DiskUsageReader struct{}

var _ UsageReader = (*DiskUsageReader)(nil)

func NewDiskUsageReader() *DiskUsageReader {
	return &DiskUsageReader{}
}

func (r *DiskUsageReader) Usage(ctx context.Context, mountPoint string) (DiskUsage, error) {
	stat, err := disk.UsageWithContext(ctx, mountPoint)
	if err != nil {
		return DiskUsage{}, fmt.Errorf("usage for %s: %w", mountPoint, err)
	}

	du := DiskUsage{
		UsedBytes:  int64(stat.Used),
		TotalBytes: int64(stat.Total),
	}

	// IO counters are keyed by device, so resolve the mount point to its
	// partition first. Missing counters (common for network filesystems)
	// are not an error: throughput simply reads as zero.
	parts, err := disk.PartitionsWithContext(ctx, true)
	if err != nil {
		return du, nil
	}

	for _, p := range parts {
		if p.Mountpoint != mountPoint {
			continue
		}

		name := filepath.Base(p.Device)

		counters, err := disk.IOCountersWithContext(ctx, name)
		if err != nil {
			break
		}

		if c, ok := counters[name]; ok {
			du.ReadBytes = c.ReadBytes
			du.WriteBytes = c.WriteBytes
		}

		break
	}

	return du, nil
}
