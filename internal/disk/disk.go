package disk

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// UsageStat represents space and inode usage of one mounted filesystem
type UsageStat struct {
	Path              string  `json:"path" yaml:"path"`
	Fstype            string  `json:"fstype" yaml:"fstype"`
	Total             uint64  `json:"total" yaml:"total"`
	Free              uint64  `json:"free" yaml:"free"`
	Used              uint64  `json:"used" yaml:"used"`
	UsedPercent       float64 `json:"used_percent" yaml:"used_percent"`
	InodesTotal       uint64  `json:"inodes_total" yaml:"inodes_total"`
	InodesUsed        uint64  `json:"inodes_used" yaml:"inodes_used"`
	InodesFree        uint64  `json:"inodes_free" yaml:"inodes_free"`
	InodesUsedPercent float64 `json:"inodes_used_percent" yaml:"inodes_used_percent"`
}

// PartitionStat describes a mounted partition
type PartitionStat struct {
	Device     string   `json:"device" yaml:"device"`
	Mountpoint string   `json:"mountpoint" yaml:"mountpoint"`
	Fstype     string   `json:"fstype" yaml:"fstype"`
	Opts       []string `json:"opts" yaml:"opts"`
}

// Info pairs a partition with its usage
type Info struct {
	Partition PartitionStat `json:"partition" yaml:"partition"`
	Usage     *UsageStat    `json:"usage" yaml:"usage"`
}

// Reader interface for disk monitoring
type Reader interface {
	Usage(ctx context.Context, path string) (*UsageStat, error)
	Partitions(ctx context.Context, all bool) ([]PartitionStat, error)
	List(ctx context.Context) ([]*Info, error)
}

// NewReader creates a new disk reader for the current platform
func NewReader() Reader {
	return newPlatformReader(fsutil.DefaultRoots())
}

// NewReaderWithRoots creates a disk reader resolving mounts under roots
func NewReaderWithRoots(roots fsutil.Roots) Reader {
	return newPlatformReader(roots)
}

// list collects the usage of every partition, skipping mounts that cannot
// be read
func list(ctx context.Context, r Reader) ([]*Info, error) {
	partitions, err := r.Partitions(ctx, false)
	if err != nil {
		return nil, err
	}

	disks := make([]*Info, 0, len(partitions))
	for _, partition := range partitions {
		usage, err := r.Usage(ctx, partition.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, &Info{Partition: partition, Usage: usage})
	}
	return disks, nil
}
