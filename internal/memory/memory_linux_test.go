//go:build linux

package memory

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

const meminfoFixture = `MemTotal:       16000000 kB
MemFree:         4000000 kB
MemAvailable:   10000000 kB
Buffers:          500000 kB
Cached:          3000000 kB
SwapCached:            0 kB
Active:          6000000 kB
Inactive:        2000000 kB
Active(file):    1000000 kB
Inactive(file):  1000000 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
Dirty:               120 kB
Shmem:            250000 kB
Slab:             400000 kB
SReclaimable:     200000 kB
SUnreclaim:       200000 kB
HugePages_Total:      10
HugePages_Free:        4
Hugepagesize:       2048 kB
`

// meminfo of a pre-3.14 kernel: no MemAvailable line
const oldMeminfoFixture = `MemTotal:       16000000 kB
MemFree:         4000000 kB
Buffers:          500000 kB
Cached:          3000000 kB
Active(file):    1000000 kB
Inactive(file):  1000000 kB
SReclaimable:     200000 kB
`

func newTestReader(t *testing.T, files map[string]string) *LinuxReader {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	r, ok := NewReaderWithRoots(fsutil.Roots{Proc: root, Sys: root}).(*LinuxReader)
	if !ok {
		t.Fatalf("NewReaderWithRoots() did not return a *LinuxReader")
	}
	return r
}

func TestLinuxReaderVirtualMemory(t *testing.T) {
	r := newTestReader(t, map[string]string{"meminfo": meminfoFixture})

	got, err := r.VirtualMemory(context.Background())
	if err != nil {
		t.Fatalf("VirtualMemory() error = %v", err)
	}
	if got.Total != 16000000<<10 || got.Available != 10000000<<10 {
		t.Errorf("Total/Available = %d/%d", got.Total, got.Available)
	}
	if got.Cached != 3200000<<10 {
		t.Errorf("Cached = %d, want Cached plus SReclaimable", got.Cached)
	}
	if got.Used != 8300000<<10 {
		t.Errorf("Used = %d, want %d", got.Used, uint64(8300000<<10))
	}
	if math.Abs(got.UsedPercent-51.875) > 1e-9 {
		t.Errorf("UsedPercent = %v, want 51.875", got.UsedPercent)
	}
	if got.HugePagesTotal != 10 || got.HugePagesFree != 4 || got.HugePageSize != 2048<<10 {
		t.Errorf("huge pages = %d/%d/%d", got.HugePagesTotal, got.HugePagesFree, got.HugePageSize)
	}
	if got.Shared != 250000<<10 || got.SReclaimable != 200000<<10 {
		t.Errorf("Shared/SReclaimable = %d/%d", got.Shared, got.SReclaimable)
	}
}

func TestLinuxReaderAvailableWithoutZoneinfo(t *testing.T) {
	r := newTestReader(t, map[string]string{"meminfo": oldMeminfoFixture})

	got, err := r.VirtualMemory(context.Background())
	if err != nil {
		t.Fatalf("VirtualMemory() error = %v", err)
	}
	if want := uint64(3200000+4000000) << 10; got.Available != want {
		t.Errorf("Available = %d, want Cached+Free %d", got.Available, want)
	}
}

func TestLinuxReaderAvailableFromZoneinfo(t *testing.T) {
	r := newTestReader(t, map[string]string{
		"meminfo":  oldMeminfoFixture,
		"zoneinfo": "Node 0, zone   Normal\n  pages free     1000\n        min      100\n        low      200\n        high     300\nNode 0, zone    DMA32\n        low      200\n",
	})

	got, err := r.VirtualMemory(context.Background())
	if err != nil {
		t.Fatalf("VirtualMemory() error = %v", err)
	}

	watermarkLow := uint64(400 * os.Getpagesize())
	want := uint64(4000000+2000000+200000)<<10 - 3*watermarkLow
	if got.Available != want {
		t.Errorf("Available = %d, want %d", got.Available, want)
	}
}

func TestLinuxReaderUsedNeverWraps(t *testing.T) {
	r := newTestReader(t, map[string]string{
		"meminfo": "MemTotal: 1000 kB\nMemFree: 800 kB\nMemAvailable: 900 kB\nBuffers: 300 kB\n",
	})

	got, err := r.VirtualMemory(context.Background())
	if err != nil {
		t.Fatalf("VirtualMemory() error = %v", err)
	}
	if got.Used != 0 || got.UsedPercent != 0 {
		t.Errorf("Used = %d (%v%%), want 0", got.Used, got.UsedPercent)
	}
}

func TestLinuxReaderMalformedMeminfo(t *testing.T) {
	r := newTestReader(t, map[string]string{"meminfo": "MemTotal: lots kB\n"})

	if _, err := r.VirtualMemory(context.Background()); !errors.Is(err, platform.ErrMalformedRecord) {
		t.Errorf("VirtualMemory() error = %v, want ErrMalformedRecord", err)
	}
}

func TestLinuxReaderSwapMemory(t *testing.T) {
	r := newTestReader(t, map[string]string{"vmstat": "pswpin 2\npswpout 3\npgfault 5\npgmajfault x\n"})

	got, err := r.SwapMemory(context.Background())
	if err != nil {
		t.Fatalf("SwapMemory() error = %v", err)
	}
	if got.Sin != 2*4096 || got.Sout != 3*4096 || got.PgFault != 5*4096 {
		t.Errorf("Sin/Sout/PgFault = %d/%d/%d", got.Sin, got.Sout, got.PgFault)
	}
	if got.PgMajFault != 0 {
		t.Errorf("PgMajFault = %d, want unparsable counter skipped", got.PgMajFault)
	}
	if got.Free > got.Total || got.Used != got.Total-got.Free {
		t.Errorf("swap totals inconsistent: %+v", got)
	}
	if got.UsedPercent < 0 || got.UsedPercent > 100 {
		t.Errorf("UsedPercent = %v", got.UsedPercent)
	}
}

func TestLinuxReaderSwapDevices(t *testing.T) {
	const header = "Filename\t\t\t\tType\t\tSize\t\tUsed\t\tPriority\n"

	tests := []struct {
		name    string
		swaps   string
		want    []SwapDevice
		wantErr error
	}{
		{
			name:  "one device",
			swaps: header + "/dev/zram0                              partition\t1024\t\t512\t\t100\n",
			want:  []SwapDevice{{Name: "/dev/zram0", UsedBytes: 512 << 10, FreeBytes: 512 << 10}},
		},
		{name: "header only", swaps: header, want: []SwapDevice{}},
		{name: "short row", swaps: header + "/dev/sda2 partition\n", wantErr: platform.ErrMalformedRecord},
		{name: "bad size", swaps: header + "/dev/sda2 partition big 0 -2\n", wantErr: platform.ErrMalformedRecord},
		{name: "unexpected header", swaps: "Name Kind Bytes InUse\n", wantErr: platform.ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(t, map[string]string{"swaps": tt.swaps})

			got, err := r.SwapDevices(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SwapDevices() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SwapDevices() error = %v", err)
			}
			if got == nil || len(got) != len(tt.want) {
				t.Fatalf("SwapDevices() = %#v, want %d devices", got, len(tt.want))
			}
			for i := range got {
				if *got[i] != tt.want[i] {
					t.Errorf("device %d = %+v, want %+v", i, *got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinuxReaderMissingFiles(t *testing.T) {
	r := newTestReader(t, nil)
	ctx := context.Background()

	if _, err := r.VirtualMemory(ctx); !errors.Is(err, platform.ErrSourceUnavailable) {
		t.Errorf("VirtualMemory() error = %v, want ErrSourceUnavailable", err)
	}
	if _, err := r.SwapDevices(ctx); !errors.Is(err, platform.ErrSourceUnavailable) {
		t.Errorf("SwapDevices() error = %v, want ErrSourceUnavailable", err)
	}
}
