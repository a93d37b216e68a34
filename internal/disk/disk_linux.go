//go:build linux

package disk

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// LinuxReader implements disk monitoring for Linux
type LinuxReader struct {
	roots fsutil.Roots
}

// newPlatformReader creates a new Linux disk reader
func newPlatformReader(roots fsutil.Roots) Reader {
	return &LinuxReader{roots: roots}
}

// Usage returns usage of the filesystem holding path
func (r *LinuxReader) Usage(ctx context.Context, path string) (*UsageStat, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: statfs %s: %w", platform.ErrSourceUnavailable, path, err)
	}
	return fromUsageStat(usage), nil
}

// Partitions returns mounted partitions from the mount table under the proc root
func (r *LinuxReader) Partitions(ctx context.Context, all bool) ([]PartitionStat, error) {
	ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{
		common.HostProcEnvKey: r.roots.Proc,
		common.HostSysEnvKey:  r.roots.Sys,
	})

	partitions, err := disk.PartitionsWithContext(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}
	return fromPartitions(partitions), nil
}

// List returns every partition with its usage
func (r *LinuxReader) List(ctx context.Context) ([]*Info, error) {
	return list(ctx, r)
}
