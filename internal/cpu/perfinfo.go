package cpu

import (
	"fmt"

	"github.com/CristiGvl/picoCPUStat/internal/byteorder"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

const (
	// performanceRecordSize is sizeof(SYSTEM_PROCESSOR_PERFORMANCE_INFORMATION):
	// five LARGE_INTEGERs and a ULONG, padded to 8-byte alignment.
	performanceRecordSize = 48

	// hundredNanosPerSecond converts 100ns FILETIME ticks to seconds
	hundredNanosPerSecond = 10000000.0

	// scale factors for a 100ns tick count split into two 32-bit halves
	filetimeHighScale = 429.4967296
	filetimeLowScale  = 0.0000001
)

// performanceRecord is one SYSTEM_PROCESSOR_PERFORMANCE_INFORMATION entry
type performanceRecord struct {
	IdleTime       int64
	KernelTime     int64
	UserTime       int64
	DpcTime        int64
	InterruptTime  int64
	InterruptCount uint32
}

// window returns up to width bytes of rec starting at off
func window(rec []byte, off, width int) []byte {
	if off >= len(rec) {
		return nil
	}
	return rec[off:min(off+width, len(rec))]
}

// decodePerformanceRecord reads one record; fields past the end of rec decode as zero
func decodePerformanceRecord(rec []byte) performanceRecord {
	return performanceRecord{
		IdleTime:       int64(byteorder.LittleEndianUint64(window(rec, 0, 8))),
		KernelTime:     int64(byteorder.LittleEndianUint64(window(rec, 8, 8))),
		UserTime:       int64(byteorder.LittleEndianUint64(window(rec, 16, 8))),
		DpcTime:        int64(byteorder.LittleEndianUint64(window(rec, 24, 8))),
		InterruptTime:  int64(byteorder.LittleEndianUint64(window(rec, 32, 8))),
		InterruptCount: byteorder.LittleEndianUint32(window(rec, 40, 4)),
	}
}

// decodePerformanceRecords splits buf into records. The count comes from the
// byte length the kernel reported, clamped to what buf can actually hold.
func decodePerformanceRecords(buf []byte, returned uint32) []performanceRecord {
	count := min(int(returned)/performanceRecordSize, len(buf)/performanceRecordSize)

	records := make([]performanceRecord, 0, count)
	for i := 0; i < count; i++ {
		off := i * performanceRecordSize
		records = append(records, decodePerformanceRecord(buf[off:off+performanceRecordSize]))
	}
	return records
}

// timesStat converts the record for logical CPU index. KernelTime includes
// idle time, so it is subtracted out of system.
func (p performanceRecord) timesStat(index int) TimesStat {
	return TimesStat{
		CPU:    fmt.Sprintf("cpu%d", index),
		User:   float64(p.UserTime) / hundredNanosPerSecond,
		System: float64(p.KernelTime-p.IdleTime) / hundredNanosPerSecond,
		Idle:   float64(p.IdleTime) / hundredNanosPerSecond,
		Irq:    float64(p.InterruptTime) / hundredNanosPerSecond,
	}
}

// filetimeSeconds converts a FILETIME duration given as its two halves
func filetimeSeconds(high, low uint32) float64 {
	return filetimeHighScale*float64(high) + filetimeLowScale*float64(low)
}

// systemTimesStat builds the aggregate record from GetSystemTimes output
func systemTimesStat(idleHigh, idleLow, kernelHigh, kernelLow, userHigh, userLow uint32) TimesStat {
	idle := filetimeSeconds(idleHigh, idleLow)
	kernel := filetimeSeconds(kernelHigh, kernelLow)
	return TimesStat{
		CPU:    totalCPU,
		User:   filetimeSeconds(userHigh, userLow),
		System: kernel - idle,
		Idle:   idle,
	}
}

// chooseLogicalCount prefers the processor-group aware count and falls back
// to SYSTEM_INFO.dwNumberOfProcessors, which is host-wide rather than
// limited to the process affinity mask.
func chooseLogicalCount(active, numberOfProcessors uint32) (int, error) {
	switch {
	case active != 0:
		return int(active), nil
	case numberOfProcessors != 0:
		return int(numberOfProcessors), nil
	}
	return 0, fmt.Errorf("%w: no logical processor count", platform.ErrSourceUnavailable)
}
