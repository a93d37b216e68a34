package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

const (
	statPrefix = "cpu"
	totalCPU   = "cpu-total"

	// defaultClockTicks is USER_HZ on every mainstream Linux build
	defaultClockTicks = 100.0
)

// parseStatLine converts one "cpuN user nice system idle iowait irq softirq
// [steal [guest [guest_nice]]]" record into seconds.
func parseStatLine(line string, clockTicks float64) (TimesStat, error) {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return TimesStat{}, fmt.Errorf("%w: stat line has %d fields, want at least 8", platform.ErrMalformedRecord, len(fields))
	}
	if !strings.HasPrefix(fields[0], statPrefix) {
		return TimesStat{}, fmt.Errorf("%w: %q is not a cpu record", platform.ErrMalformedRecord, fields[0])
	}

	cpu := fields[0]
	if cpu == statPrefix {
		cpu = totalCPU
	}

	values := make([]float64, 10)
	for i := range values {
		idx := i + 1
		if idx >= len(fields) {
			break
		}
		v, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return TimesStat{}, fmt.Errorf("%w: %s field %d: %w", platform.ErrMalformedRecord, cpu, idx+1, err)
		}
		values[i] = v / clockTicks
	}

	// steal (2.6.11+), guest (2.6.24+) and guest_nice (3.2.0+) stay zero on older kernels
	return TimesStat{
		CPU:       cpu,
		User:      values[0],
		Nice:      values[1],
		System:    values[2],
		Idle:      values[3],
		Iowait:    values[4],
		Irq:       values[5],
		Softirq:   values[6],
		Steal:     values[7],
		Guest:     values[8],
		GuestNice: values[9],
	}, nil
}

// totalTimesFromLines parses the aggregate record on the first line
func totalTimesFromLines(lines []string, clockTicks float64) ([]TimesStat, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: stat source is empty", platform.ErrMalformedRecord)
	}
	t, err := parseStatLine(lines[0], clockTicks)
	if err != nil {
		return nil, err
	}
	return []TimesStat{t}, nil
}

// perCPUTimesFromLines parses the per-core records that follow the aggregate,
// stopping at the first line that is not a cpu record (intr, ctxt, ...).
func perCPUTimesFromLines(lines []string, clockTicks float64) ([]TimesStat, error) {
	ret := []TimesStat{}
	if len(lines) < 2 {
		return ret, nil
	}

	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, statPrefix) {
			break
		}
		t, err := parseStatLine(line, clockTicks)
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}
