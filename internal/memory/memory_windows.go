//go:build windows

package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// WindowsReader implements memory monitoring for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows memory reader
func newPlatformReader(fsutil.Roots) Reader {
	return &WindowsReader{}
}

// VirtualMemory returns physical memory usage from GlobalMemoryStatusEx
func (r *WindowsReader) VirtualMemory(ctx context.Context) (*VirtualMemoryStat, error) {
	memInfo, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}

	return fromVirtualMemory(memInfo), nil
}

// SwapMemory returns page file usage
func (r *WindowsReader) SwapMemory(ctx context.Context) (*SwapMemoryStat, error) {
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}

	return fromSwapMemory(swap), nil
}

// SwapDevices returns one entry per page file
func (r *WindowsReader) SwapDevices(ctx context.Context) ([]*SwapDevice, error) {
	devices, err := mem.SwapDevicesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
	}
	return fromSwapDevices(devices), nil
}
