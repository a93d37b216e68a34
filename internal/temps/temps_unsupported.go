//go:build !linux && !windows

package temps

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback temperature reader for unsupported platforms
func newPlatformReader(fsutil.Roots) Reader {
	return &UnsupportedReader{}
}

// Sensors returns an error for unsupported platforms
func (r *UnsupportedReader) Sensors(ctx context.Context) (*Info, error) {
	return nil, platform.Unsupported("temperature")
}
