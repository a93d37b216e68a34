//go:build linux

package memory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// LinuxReader implements memory monitoring for Linux
type LinuxReader struct {
	roots fsutil.Roots
}

// newPlatformReader creates a new Linux memory reader
func newPlatformReader(roots fsutil.Roots) Reader {
	return &LinuxReader{roots: roots}
}

// hostContext points gopsutil at the configured proc root
func (r *LinuxReader) hostContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, common.EnvKey, common.EnvMap{
		common.HostProcEnvKey: r.roots.Proc,
		common.HostSysEnvKey:  r.roots.Sys,
	})
}

// VirtualMemory returns physical memory usage from /proc/meminfo
func (r *LinuxReader) VirtualMemory(ctx context.Context) (*VirtualMemoryStat, error) {
	memInfo, err := mem.VirtualMemoryWithContext(r.hostContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: meminfo: %w", platform.ErrMalformedRecord, err)
	}
	// gopsutil ignores a missing meminfo and hands back zeros
	if memInfo.Total == 0 {
		return nil, fmt.Errorf("%w: %s reports no MemTotal", platform.ErrSourceUnavailable, r.roots.ProcPath("meminfo"))
	}

	ret := fromVirtualMemory(memInfo)
	// gopsutil subtracts without a floor
	if inUse := ret.Free + ret.Buffers + ret.Cached; inUse >= ret.Total {
		ret.Used = 0
		ret.UsedPercent = 0
	}
	return ret, nil
}

// SwapMemory returns swap usage plus the paging counters of /proc/vmstat
func (r *LinuxReader) SwapMemory(ctx context.Context) (*SwapMemoryStat, error) {
	swap, err := mem.SwapMemoryWithContext(r.hostContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: sysinfo: %w", platform.ErrSourceUnavailable, err)
	}
	return fromSwapMemory(swap), nil
}

// SwapDevices returns the active swap areas listed in /proc/swaps
func (r *LinuxReader) SwapDevices(ctx context.Context) ([]*SwapDevice, error) {
	devices, err := mem.SwapDevicesWithContext(r.hostContext(ctx))
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", platform.ErrMalformedRecord, err)
	}
	return fromSwapDevices(devices), nil
}
