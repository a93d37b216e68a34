package disk

import "github.com/shirou/gopsutil/v3/disk"

// fromUsageStat keeps gopsutil's inode rule: filesystems reporting more
// free inodes than total (btrfs, some fuse mounts) leave inode usage unset.
func fromUsageStat(u *disk.UsageStat) *UsageStat {
	return &UsageStat{
		Path:              u.Path,
		Fstype:            u.Fstype,
		Total:             u.Total,
		Free:              u.Free,
		Used:              u.Used,
		UsedPercent:       u.UsedPercent,
		InodesTotal:       u.InodesTotal,
		InodesUsed:        u.InodesUsed,
		InodesFree:        u.InodesFree,
		InodesUsedPercent: u.InodesUsedPercent,
	}
}

func fromPartitions(partitions []disk.PartitionStat) []PartitionStat {
	ret := make([]PartitionStat, 0, len(partitions))
	for _, p := range partitions {
		ret = append(ret, PartitionStat{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Opts:       p.Opts,
		})
	}
	return ret
}
