package cpu

import (
	"context"
	"encoding/json"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// TimesStat is the time one CPU (or all of them, for "cpu-total") has spent
// in each state since boot, in seconds. States a platform does not report
// are zero.
type TimesStat struct {
	CPU       string  `json:"cpu" yaml:"cpu"`
	User      float64 `json:"user" yaml:"user"`
	System    float64 `json:"system" yaml:"system"`
	Idle      float64 `json:"idle" yaml:"idle"`
	Nice      float64 `json:"nice" yaml:"nice"`
	Iowait    float64 `json:"io_wait" yaml:"io_wait"`
	Irq       float64 `json:"irq" yaml:"irq"`
	Softirq   float64 `json:"soft_irq" yaml:"soft_irq"`
	Steal     float64 `json:"steal" yaml:"steal"`
	Guest     float64 `json:"guest" yaml:"guest"`
	GuestNice float64 `json:"guest_nice" yaml:"guest_nice"`
}

// InfoStat is the static identity of one logical CPU
type InfoStat struct {
	CPU        int32    `json:"cpu" yaml:"cpu"`
	VendorID   string   `json:"vendor_id" yaml:"vendor_id"`
	Family     string   `json:"family" yaml:"family"`
	Model      string   `json:"model" yaml:"model"`
	Stepping   int32    `json:"stepping" yaml:"stepping"`
	PhysicalID string   `json:"physical_id" yaml:"physical_id"`
	CoreID     string   `json:"core_id" yaml:"core_id"`
	Cores      int32    `json:"cores" yaml:"cores"`
	ModelName  string   `json:"model_name" yaml:"model_name"`
	Mhz        float64  `json:"mhz" yaml:"mhz"`
	CacheSize  int32    `json:"cache_size" yaml:"cache_size"`
	Flags      []string `json:"flags" yaml:"flags"`
	Microcode  string   `json:"microcode" yaml:"microcode"`
}

// Total returns the sum of every state. Guest time is already counted in
// user and nice on Linux, so it is left out.
func (t TimesStat) Total() float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

func (t TimesStat) String() string {
	s, _ := json.Marshal(t)
	return string(s)
}

func (i InfoStat) String() string {
	s, _ := json.Marshal(i)
	return string(s)
}

// Reader interface for CPU monitoring
type Reader interface {
	// Times returns the aggregate record, or one record per logical CPU when perCPU is set
	Times(ctx context.Context, perCPU bool) ([]TimesStat, error)
	// Infos returns one identity record per logical CPU
	Infos(ctx context.Context) ([]InfoStat, error)
	// Counts returns the number of logical CPUs, or physical cores when logical is false
	Counts(ctx context.Context, logical bool) (int, error)
}

// NewReader creates a new CPU reader for the current platform
func NewReader() Reader {
	return newPlatformReader(fsutil.DefaultRoots())
}

// NewReaderWithRoots creates a CPU reader that reads procfs and sysfs from
// the given roots. Platforms without procfs ignore them.
func NewReaderWithRoots(roots fsutil.Roots) Reader {
	return newPlatformReader(roots)
}

// TotalTimes returns exactly one record covering all CPUs
func TotalTimes(ctx context.Context) ([]TimesStat, error) {
	return NewReader().Times(ctx, false)
}

// PerCPUTimes returns one record per logical CPU
func PerCPUTimes(ctx context.Context) ([]TimesStat, error) {
	return NewReader().Times(ctx, true)
}

// AllInfos returns one identity record per logical CPU
func AllInfos(ctx context.Context) ([]InfoStat, error) {
	return NewReader().Infos(ctx)
}

// Counts returns the logical CPU count, or the physical core count
func Counts(ctx context.Context, logical bool) (int, error) {
	return NewReader().Counts(ctx, logical)
}
