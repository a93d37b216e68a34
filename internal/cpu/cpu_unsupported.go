//go:build !linux && !windows

package cpu

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback CPU reader for unsupported platforms
func newPlatformReader(fsutil.Roots) Reader {
	return &UnsupportedReader{}
}

// Times returns an error for unsupported platforms
func (r *UnsupportedReader) Times(ctx context.Context, perCPU bool) ([]TimesStat, error) {
	return nil, platform.Unsupported("CPU")
}

// Infos returns an error for unsupported platforms
func (r *UnsupportedReader) Infos(ctx context.Context) ([]InfoStat, error) {
	return nil, platform.Unsupported("CPU")
}

// Counts returns an error for unsupported platforms
func (r *UnsupportedReader) Counts(ctx context.Context, logical bool) (int, error) {
	return 0, platform.Unsupported("CPU")
}
