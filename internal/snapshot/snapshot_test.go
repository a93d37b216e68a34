package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/picoCPUStat/internal/cpu"
	"github.com/CristiGvl/picoCPUStat/internal/memory"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
	"github.com/CristiGvl/picoCPUStat/internal/temps"
)

type fakeCPU struct {
	total, perCPU []cpu.TimesStat
	infos         []cpu.InfoStat
	totalErr      error
	perCPUErr     error
	infosErr      error
}

func (f *fakeCPU) Times(_ context.Context, perCPU bool) ([]cpu.TimesStat, error) {
	if perCPU {
		return f.perCPU, f.perCPUErr
	}
	return f.total, f.totalErr
}

func (f *fakeCPU) Infos(context.Context) ([]cpu.InfoStat, error) {
	return f.infos, f.infosErr
}

func (f *fakeCPU) Counts(_ context.Context, logical bool) (int, error) {
	if logical {
		return len(f.perCPU), nil
	}
	return 1, nil
}

type fakeMemory struct {
	vm  *memory.VirtualMemoryStat
	err error
}

func (f *fakeMemory) VirtualMemory(context.Context) (*memory.VirtualMemoryStat, error) {
	return f.vm, f.err
}

func (f *fakeMemory) SwapMemory(context.Context) (*memory.SwapMemoryStat, error) {
	return nil, platform.ErrUnsupported
}

func (f *fakeMemory) SwapDevices(context.Context) ([]*memory.SwapDevice, error) {
	return nil, platform.ErrUnsupported
}

type fakeTemps struct {
	err error
}

func (f fakeTemps) Sensors(context.Context) (*temps.Info, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &temps.Info{CPU: []temps.Sensor{{Key: "k10temp_tctl", Temperature: 55.5}}}, nil
}

func healthyCPU() *fakeCPU {
	return &fakeCPU{
		total: []cpu.TimesStat{{CPU: "cpu-total", User: 10, System: 5, Idle: 85}},
		perCPU: []cpu.TimesStat{
			{CPU: "cpu0", User: 6, System: 2, Idle: 42},
			{CPU: "cpu1", User: 4, System: 3, Idle: 43},
		},
		infos: []cpu.InfoStat{
			{CPU: 0, VendorID: "GenuineIntel", ModelName: "Test CPU", Mhz: 3400, Flags: []string{"sse2", "avx"}},
			{CPU: 1, VendorID: "GenuineIntel", ModelName: "Test CPU", Mhz: 3400, Flags: []string{"sse2", "avx"}},
		},
	}
}

func TestCollect(t *testing.T) {
	src := Sources{
		CPU:    healthyCPU(),
		Memory: &fakeMemory{vm: &memory.VirtualMemoryStat{Total: 1 << 30, Used: 1 << 29, UsedPercent: 50}},
		Temps:  fakeTemps{},
	}

	snap, err := Collect(context.Background(), src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if snap.Total.CPU != "cpu-total" || len(snap.PerCPU) != 2 || len(snap.Infos) != 2 {
		t.Errorf("Collect() = %+v", snap)
	}
	if snap.LogicalCount != 2 || snap.PhysicalCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", snap.LogicalCount, snap.PhysicalCount)
	}
	if snap.Memory == nil || snap.Memory.UsedPercent != 50 {
		t.Errorf("Memory = %+v", snap.Memory)
	}
	if snap.Temperatures == nil || snap.Temperatures.CPU[0].Temperature != 55.5 {
		t.Errorf("Temperatures = %+v", snap.Temperatures)
	}
	if snap.Timestamp == 0 || snap.Platform == "" {
		t.Errorf("Timestamp/Platform not set: %d %q", snap.Timestamp, snap.Platform)
	}
	if len(snap.Errors) != 0 {
		t.Errorf("Errors = %v, want none", snap.Errors)
	}
}

func TestCollectRecordsSectionErrors(t *testing.T) {
	c := healthyCPU()
	c.perCPUErr = platform.ErrSourceUnavailable
	c.infosErr = platform.ErrMalformedRecord

	snap, err := Collect(context.Background(), Sources{
		CPU:    c,
		Memory: &fakeMemory{err: platform.ErrSourceUnavailable},
		Temps:  fakeTemps{err: platform.Unsupported("temperature")},
	})
	if err != nil {
		t.Fatalf("Collect() error = %v, want section errors recorded instead", err)
	}

	for _, section := range []string{"per_cpu", "infos", "memory", "temperatures"} {
		if _, ok := snap.Errors[section]; !ok {
			t.Errorf("Errors missing %q: %v", section, snap.Errors)
		}
	}
	if snap.Total.Idle != 85 {
		t.Errorf("Total = %+v", snap.Total)
	}
}

func TestCollectWithoutMemory(t *testing.T) {
	snap, err := Collect(context.Background(), Sources{CPU: healthyCPU()})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if snap.Memory != nil || len(snap.Errors) != 0 {
		t.Errorf("Memory = %+v, Errors = %v", snap.Memory, snap.Errors)
	}
}

func TestCollectTotalFailureAborts(t *testing.T) {
	tests := []struct {
		name string
		cpu  *fakeCPU
		want error
	}{
		{"read error", &fakeCPU{totalErr: platform.ErrSourceUnavailable}, platform.ErrSourceUnavailable},
		{"no record", &fakeCPU{total: []cpu.TimesStat{}}, platform.ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Collect(context.Background(), Sources{CPU: tt.cpu})
			if !errors.Is(err, tt.want) {
				t.Errorf("Collect() error = %v, want %v", err, tt.want)
			}
			if snap != nil {
				t.Errorf("Collect() snapshot = %+v, want nil", snap)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", JSON, false},
		{"json", JSON, false},
		{"yaml", YAML, false},
		{"cbor", CBOR, false},
		{"xml", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	if got := CBOR.ContentType(); got != "application/cbor" {
		t.Errorf("CBOR.ContentType() = %q", got)
	}
	if got := YAML.ContentType(); got != "application/yaml" {
		t.Errorf("YAML.ContentType() = %q", got)
	}
	if got := JSON.ContentType(); got != "application/json" {
		t.Errorf("JSON.ContentType() = %q", got)
	}
}

func collected(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := Collect(context.Background(), Sources{CPU: healthyCPU()})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return snap
}

func TestEncodeDecodes(t *testing.T) {
	snap := collected(t)

	decoders := map[Format]func([]byte, any) error{
		JSON: json.Unmarshal,
		YAML: yaml.Unmarshal,
		CBOR: cbor.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, snap); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			var got Snapshot
			if err := decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("decoding %s output: %v", format, err)
			}
			if got.Total != snap.Total || got.Timestamp != snap.Timestamp {
				t.Errorf("decoded Total/Timestamp = %+v/%d, want %+v/%d", got.Total, got.Timestamp, snap.Total, snap.Timestamp)
			}
			if len(got.Infos) != 2 || got.Infos[1].Flags[1] != "avx" {
				t.Errorf("decoded Infos = %+v", got.Infos)
			}
		})
	}
}

func TestEncodeYAMLUsesSnakeCase(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, YAML, collected(t)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	for _, key := range []string{"per_cpu:", "logical_count: 2", "vendor_id: GenuineIntel"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("YAML output missing %q:\n%s", key, buf.String())
		}
	}
}

func TestEncodeCBORDeterministic(t *testing.T) {
	snap := collected(t)

	var a, b bytes.Buffer
	if err := Encode(&a, CBOR, snap); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := Encode(&b, CBOR, snap); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("CBOR encoding of the same snapshot differs between calls")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, Format("xml"), collected(t)); err == nil {
		t.Error("Encode(xml) should fail")
	}
}
