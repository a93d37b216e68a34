//go:build windows

package cpu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"github.com/StackExchange/wmi"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

const (
	// SystemProcessorPerformanceInformation class for NtQuerySystemInformation
	systemProcessorPerformanceInformation = 8

	allProcessorGroups = 0xffff

	// buffer size used when the logical count is unknown
	defaultCPUNum = 1024
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetSystemTimes          = modkernel32.NewProc("GetSystemTimes")
	procGetActiveProcessorCount = modkernel32.NewProc("GetActiveProcessorCount")
	procGetSystemInfo           = modkernel32.NewProc("GetSystemInfo")
)

// systemInfo mirrors SYSTEM_INFO
type systemInfo struct {
	wProcessorArchitecture      uint16
	wReserved                   uint16
	dwPageSize                  uint32
	lpMinimumApplicationAddress uintptr
	lpMaximumApplicationAddress uintptr
	dwActiveProcessorMask       uintptr
	dwNumberOfProcessors        uint32
	dwProcessorType             uint32
	dwAllocationGranularity     uint32
	wProcessorLevel             uint16
	wProcessorRevision          uint16
}

var (
	wmiOnce   sync.Once
	wmiClient *wmi.Client
)

// queryClient returns the process-wide WMI client, building it on first use.
// Every Query call opens and releases its own locator and connection.
func queryClient() *wmi.Client {
	wmiOnce.Do(func() {
		wmiClient = &wmi.Client{
			AllowMissingFields: true,
			NonePtrZero:        true,
		}
	})
	return wmiClient
}

// Win32_Processor represents the WMI columns read for CPU identity
type Win32_Processor struct {
	Family                    uint16
	Manufacturer              string
	Name                      string
	NumberOfLogicalProcessors uint32
	NumberOfCores             uint32
	ProcessorID               *string
	Stepping                  *string
	MaxClockSpeed             uint32
}

// WindowsReader implements CPU monitoring for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows CPU reader
func newPlatformReader(fsutil.Roots) Reader {
	return &WindowsReader{}
}

// Times returns the aggregate record from GetSystemTimes, or per-CPU records
// from NtQuerySystemInformation
func (r *WindowsReader) Times(ctx context.Context, perCPU bool) ([]TimesStat, error) {
	if perCPU {
		return r.perCPUTimes()
	}

	var idle, kernel, user windows.Filetime
	ret, _, err := procGetSystemTimes.Call(
		uintptr(unsafe.Pointer(&idle)),
		uintptr(unsafe.Pointer(&kernel)),
		uintptr(unsafe.Pointer(&user)),
	)
	if ret == 0 {
		return nil, fmt.Errorf("%w: GetSystemTimes: %w", platform.ErrSourceUnavailable, err)
	}

	return []TimesStat{systemTimesStat(
		idle.HighDateTime, idle.LowDateTime,
		kernel.HighDateTime, kernel.LowDateTime,
		user.HighDateTime, user.LowDateTime,
	)}, nil
}

func (r *WindowsReader) perCPUTimes() ([]TimesStat, error) {
	n := defaultCPUNum
	if count, err := logicalCount(); err == nil {
		n = count
	}

	buf := make([]byte, n*performanceRecordSize)
	var returned uint32
	if err := windows.NtQuerySystemInformation(
		systemProcessorPerformanceInformation,
		unsafe.Pointer(&buf[0]),
		uint32(len(buf)),
		&returned,
	); err != nil {
		return nil, fmt.Errorf("%w: NtQuerySystemInformation: %w", platform.ErrSourceUnavailable, err)
	}

	records := decodePerformanceRecords(buf, returned)
	ret := make([]TimesStat, 0, len(records))
	for i, p := range records {
		ret = append(ret, p.timesStat(i))
	}
	return ret, nil
}

// Infos returns one record per Win32_Processor row
func (r *WindowsReader) Infos(ctx context.Context) ([]InfoStat, error) {
	var rows []Win32_Processor
	if err := queryClient().Query(wmi.CreateQuery(&rows, ""), &rows); err != nil {
		return nil, fmt.Errorf("%w: Win32_Processor: %w", platform.ErrSourceUnavailable, err)
	}

	// WMI has no feature column; the instruction set of the running CPU stands in
	flags := cpuid.CPU.FeatureSet()

	ret := make([]InfoStat, 0, len(rows))
	for i, row := range rows {
		ret = append(ret, processorInfo(int32(i), row, flags))
	}
	return ret, nil
}

func processorInfo(index int32, row Win32_Processor, flags []string) InfoStat {
	info := InfoStat{
		CPU:       index,
		VendorID:  row.Manufacturer,
		Family:    strconv.FormatUint(uint64(row.Family), 10),
		Cores:     int32(row.NumberOfLogicalProcessors),
		ModelName: strings.TrimSpace(row.Name),
		Mhz:       float64(row.MaxClockSpeed),
		Flags:     append([]string(nil), flags...),
	}
	if row.ProcessorID != nil {
		info.PhysicalID = *row.ProcessorID
	}
	// Stepping is free text on some firmware
	if row.Stepping != nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(*row.Stepping), 10, 32); err == nil {
			info.Stepping = int32(n)
		}
	}
	return info
}

// Counts returns the active logical processor count or the number of physical cores
func (r *WindowsReader) Counts(ctx context.Context, logical bool) (int, error) {
	if logical {
		return logicalCount()
	}

	var rows []struct {
		NumberOfCores uint32
	}
	if err := queryClient().Query("SELECT NumberOfCores FROM Win32_Processor", &rows); err != nil {
		return 0, fmt.Errorf("%w: Win32_Processor: %w", platform.ErrSourceUnavailable, err)
	}

	cores := 0
	for _, row := range rows {
		cores += int(row.NumberOfCores)
	}
	return cores, nil
}

// logicalCount counts active processors across all processor groups
func logicalCount() (int, error) {
	var active uint32
	if err := procGetActiveProcessorCount.Find(); err == nil {
		ret, _, _ := procGetActiveProcessorCount.Call(uintptr(allProcessorGroups))
		active = uint32(ret)
	}

	var info systemInfo
	if active == 0 {
		procGetSystemInfo.Call(uintptr(unsafe.Pointer(&info)))
	}
	return chooseLogicalCount(active, info.dwNumberOfProcessors)
}
