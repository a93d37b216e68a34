//go:build windows

package disk

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// WindowsReader implements disk monitoring for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows disk reader
func newPlatformReader(fsutil.Roots) Reader {
	return &WindowsReader{}
}

// Usage returns usage of the volume holding path
func (r *WindowsReader) Usage(ctx context.Context, path string) (*UsageStat, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}
	return fromUsageStat(usage), nil
}

// Partitions returns the logical drives
func (r *WindowsReader) Partitions(ctx context.Context, all bool) ([]PartitionStat, error) {
	partitions, err := disk.PartitionsWithContext(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}
	return fromPartitions(partitions), nil
}

// List returns every drive with its usage
func (r *WindowsReader) List(ctx context.Context) ([]*Info, error) {
	return list(ctx, r)
}
