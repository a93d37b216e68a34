//go:build !linux && !windows

package disk

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback disk reader for unsupported platforms
func newPlatformReader(fsutil.Roots) Reader {
	return &UnsupportedReader{}
}

func (r *UnsupportedReader) Usage(ctx context.Context, path string) (*UsageStat, error) {
	return nil, platform.Unsupported("disk")
}

func (r *UnsupportedReader) Partitions(ctx context.Context, all bool) ([]PartitionStat, error) {
	return nil, platform.Unsupported("disk")
}

func (r *UnsupportedReader) List(ctx context.Context) ([]*Info, error) {
	return nil, platform.Unsupported("disk")
}
