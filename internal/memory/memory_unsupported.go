//go:build !linux && !windows

package memory

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback memory reader for unsupported platforms
func newPlatformReader(fsutil.Roots) Reader {
	return &UnsupportedReader{}
}

func (r *UnsupportedReader) VirtualMemory(ctx context.Context) (*VirtualMemoryStat, error) {
	return nil, platform.Unsupported("memory")
}

func (r *UnsupportedReader) SwapMemory(ctx context.Context) (*SwapMemoryStat, error) {
	return nil, platform.Unsupported("memory")
}

func (r *UnsupportedReader) SwapDevices(ctx context.Context) ([]*SwapDevice, error) {
	return nil, platform.Unsupported("memory")
}
