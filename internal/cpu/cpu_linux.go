//go:build linux

package cpu

import (
	"context"
	"fmt"
	"strconv"

	psutil "github.com/shirou/gopsutil/v3/cpu"
	"github.com/tklauser/go-sysconf"
	"github.com/tklauser/numcpus"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// LinuxReader implements CPU monitoring for Linux from procfs and sysfs
type LinuxReader struct {
	roots      fsutil.Roots
	clockTicks float64

	// host-wide counters; nil when reading a relocated procfs, in which case
	// counts are derived from the files under roots
	onlineCPUs    func() (int, error)
	physicalCores func(ctx context.Context) (int, error)
}

// newPlatformReader creates a new Linux CPU reader
func newPlatformReader(roots fsutil.Roots) Reader {
	r := &LinuxReader{
		roots:      roots,
		clockTicks: clockTicks(),
	}
	if roots.Proc == fsutil.DefaultProcRoot && roots.Sys == fsutil.DefaultSysRoot {
		r.onlineCPUs = numcpus.GetOnline
		r.physicalCores = func(ctx context.Context) (int, error) {
			return psutil.CountsWithContext(ctx, false)
		}
	}
	return r
}

// clockTicks returns USER_HZ, the unit of /proc/stat counters
func clockTicks() float64 {
	ticks, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || ticks <= 0 {
		return defaultClockTicks
	}
	return float64(ticks)
}

// Times returns the aggregate or per-CPU time records from /proc/stat
func (r *LinuxReader) Times(ctx context.Context, perCPU bool) ([]TimesStat, error) {
	filename := r.roots.ProcPath("stat")

	if !perCPU {
		lines, err := fsutil.ReadLinesOffsetN(filename, 0, 1)
		if err != nil {
			return nil, err
		}
		return totalTimesFromLines(lines, r.clockTicks)
	}

	lines, err := fsutil.ReadLines(filename)
	if err != nil {
		return nil, err
	}
	return perCPUTimesFromLines(lines, r.clockTicks)
}

// Infos returns one record per processor block of /proc/cpuinfo
func (r *LinuxReader) Infos(ctx context.Context) ([]InfoStat, error) {
	lines, err := fsutil.ReadLines(r.roots.ProcPath("cpuinfo"))
	if err != nil {
		return nil, err
	}
	return assembleInfos(lines, r.finishInfo)
}

func (r *LinuxReader) cpuPath(n int32, elem string) string {
	return r.roots.SysPath("devices/system/cpu", fmt.Sprintf("cpu%d", n), elem)
}

// finishInfo fills the core id from sysfs when cpuinfo lacks it, and always
// reports the maximum rather than the current clock speed, matching what
// Windows reports. Missing sysfs files leave the fields as they were.
func (r *LinuxReader) finishInfo(c *InfoStat) {
	if c.CoreID == "" {
		if coreID, err := fsutil.ReadFirstLine(r.cpuPath(c.CPU, "topology/core_id")); err == nil {
			c.CoreID = coreID
		}
	}

	line, err := fsutil.ReadFirstLine(r.cpuPath(c.CPU, "cpufreq/cpuinfo_max_freq"))
	if err != nil {
		return
	}
	raw, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return
	}
	c.Mhz = maxFreqMhz(raw)
}

// Counts returns the online logical CPU count or the physical core count
func (r *LinuxReader) Counts(ctx context.Context, logical bool) (int, error) {
	if logical {
		if r.onlineCPUs != nil {
			if n, err := r.onlineCPUs(); err == nil && n > 0 {
				return n, nil
			}
		}
		times, err := r.Times(ctx, true)
		if err != nil {
			return 0, err
		}
		return len(times), nil
	}

	if r.physicalCores != nil {
		if n, err := r.physicalCores(ctx); err == nil && n > 0 {
			return n, nil
		}
	}
	infos, err := r.Infos(ctx)
	if err != nil {
		return 0, err
	}
	return physicalCoreCount(infos), nil
}
