// Package snapshot gathers one point-in-time view of the CPU and memory
// telemetry and encodes it for export.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/CristiGvl/picoCPUStat/internal/cpu"
	"github.com/CristiGvl/picoCPUStat/internal/memory"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
	"github.com/CristiGvl/picoCPUStat/internal/temps"
)

// Sources are the readers a snapshot is collected from. Memory and Temps
// are optional.
type Sources struct {
	CPU    cpu.Reader
	Memory memory.Reader
	Temps  temps.Reader
}

// Snapshot is one collection of telemetry. Sections that failed are left
// empty and their error recorded in Errors under the section name.
type Snapshot struct {
	Timestamp     int64                     `json:"timestamp" yaml:"timestamp"`
	Platform      string                    `json:"platform" yaml:"platform"`
	Total         cpu.TimesStat             `json:"total" yaml:"total"`
	PerCPU        []cpu.TimesStat           `json:"per_cpu,omitempty" yaml:"per_cpu,omitempty"`
	Infos         []cpu.InfoStat            `json:"infos,omitempty" yaml:"infos,omitempty"`
	LogicalCount  int                       `json:"logical_count" yaml:"logical_count"`
	PhysicalCount int                       `json:"physical_count" yaml:"physical_count"`
	Memory        *memory.VirtualMemoryStat `json:"memory,omitempty" yaml:"memory,omitempty"`
	Temperatures  *temps.Info               `json:"temperatures,omitempty" yaml:"temperatures,omitempty"`
	Errors        map[string]string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Collect reads every section from src. Only a failure to read the
// aggregate CPU times is returned as an error.
func Collect(ctx context.Context, src Sources) (*Snapshot, error) {
	total, err := src.CPU.Times(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("collecting total CPU times: %w", err)
	}
	if len(total) == 0 {
		return nil, fmt.Errorf("collecting total CPU times: %w", platform.ErrMalformedRecord)
	}

	snap := &Snapshot{
		Timestamp: time.Now().Unix(),
		Platform:  string(platform.GetOS()),
		Total:     total[0],
	}

	if snap.PerCPU, err = src.CPU.Times(ctx, true); err != nil {
		snap.fail("per_cpu", err)
	}
	if snap.Infos, err = src.CPU.Infos(ctx); err != nil {
		snap.fail("infos", err)
	}
	if snap.LogicalCount, err = src.CPU.Counts(ctx, true); err != nil {
		snap.fail("logical_count", err)
	}
	if snap.PhysicalCount, err = src.CPU.Counts(ctx, false); err != nil {
		snap.fail("physical_count", err)
	}
	if src.Memory != nil {
		if snap.Memory, err = src.Memory.VirtualMemory(ctx); err != nil {
			snap.fail("memory", err)
		}
	}
	if src.Temps != nil {
		if snap.Temperatures, err = src.Temps.Sensors(ctx); err != nil {
			snap.fail("temperatures", err)
		}
	}

	return snap, nil
}

func (s *Snapshot) fail(section string, err error) {
	if s.Errors == nil {
		s.Errors = make(map[string]string)
	}
	s.Errors[section] = err.Error()
}
