package memory

import "github.com/shirou/gopsutil/v3/mem"

func fromVirtualMemory(v *mem.VirtualMemoryStat) *VirtualMemoryStat {
	ret := &VirtualMemoryStat{
		Total:          v.Total,
		Available:      v.Available,
		Used:           v.Used,
		Free:           v.Free,
		Active:         v.Active,
		Inactive:       v.Inactive,
		Buffers:        v.Buffers,
		Cached:         v.Cached,
		WriteBack:      v.WriteBack,
		Dirty:          v.Dirty,
		WriteBackTmp:   v.WriteBackTmp,
		Shared:         v.Shared,
		Slab:           v.Slab,
		SReclaimable:   v.Sreclaimable,
		SUnreclaim:     v.Sunreclaim,
		PageTables:     v.PageTables,
		SwapCached:     v.SwapCached,
		CommitLimit:    v.CommitLimit,
		CommittedAS:    v.CommittedAS,
		HighTotal:      v.HighTotal,
		HighFree:       v.HighFree,
		LowTotal:       v.LowTotal,
		LowFree:        v.LowFree,
		SwapTotal:      v.SwapTotal,
		SwapFree:       v.SwapFree,
		Mapped:         v.Mapped,
		VmallocTotal:   v.VmallocTotal,
		VmallocUsed:    v.VmallocUsed,
		VmallocChunk:   v.VmallocChunk,
		HugePagesTotal: v.HugePagesTotal,
		HugePagesFree:  v.HugePagesFree,
		HugePagesRsvd:  v.HugePagesRsvd,
		HugePagesSurp:  v.HugePagesSurp,
		HugePageSize:   v.HugePageSize,
		AnonHugePages:  v.AnonHugePages,
	}
	// gopsutil divides by Total unchecked
	ret.UsedPercent = percent(ret.Used, ret.Total)
	return ret
}

func fromSwapMemory(s *mem.SwapMemoryStat) *SwapMemoryStat {
	return &SwapMemoryStat{
		Total:       s.Total,
		Used:        s.Used,
		Free:        s.Free,
		UsedPercent: percent(s.Used, s.Total),
		Sin:         s.Sin,
		Sout:        s.Sout,
		PgIn:        s.PgIn,
		PgOut:       s.PgOut,
		PgFault:     s.PgFault,
		PgMajFault:  s.PgMajFault,
	}
}

// fromSwapDevices never returns nil so an idle host encodes as []
func fromSwapDevices(devices []*mem.SwapDevice) []*SwapDevice {
	ret := make([]*SwapDevice, 0, len(devices))
	for _, d := range devices {
		ret = append(ret, &SwapDevice{Name: d.Name, UsedBytes: d.UsedBytes, FreeBytes: d.FreeBytes})
	}
	return ret
}
