//go:build linux

package disk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

func newTestReader(t *testing.T, mountpoint string) Reader {
	t.Helper()
	proc := t.TempDir()
	if err := os.MkdirAll(filepath.Join(proc, "1"), 0755); err != nil {
		t.Fatalf("Failed to create proc tree: %v", err)
	}

	mountinfo := fmt.Sprintf("22 1 8:1 / %s rw,relatime shared:1 - ext4 /dev/sda1 rw\n", mountpoint) +
		"23 22 0:5 / /proc rw,nosuid - proc proc rw\n" +
		"24 22 8:17 / /nonexistent-mount rw - xfs /dev/sdb1 rw\n"
	files := map[string]string{
		"1/mountinfo": mountinfo,
		"filesystems": "nodev\tproc\n\text4\n\txfs\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(proc, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return NewReaderWithRoots(fsutil.Roots{Proc: proc, Sys: t.TempDir()})
}

func TestLinuxReaderUsage(t *testing.T) {
	r := NewReader()

	got, err := r.Usage(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Usage() error = %v", err)
	}
	if got.Total == 0 || got.Free > got.Total {
		t.Errorf("Usage() = %+v", got)
	}
	if got.UsedPercent < 0 || got.UsedPercent > 100 {
		t.Errorf("UsedPercent = %v", got.UsedPercent)
	}
}

func TestLinuxReaderUsageMissingPath(t *testing.T) {
	r := NewReader()

	_, err := r.Usage(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, platform.ErrSourceUnavailable) {
		t.Errorf("Usage() error = %v, want ErrSourceUnavailable", err)
	}
}

func TestLinuxReaderPartitions(t *testing.T) {
	r := newTestReader(t, "/srv")

	got, err := r.Partitions(context.Background(), false)
	if err != nil {
		t.Fatalf("Partitions() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Partitions(false) returned %d entries, want 2 physical: %+v", len(got), got)
	}
	if got[0].Device != "/dev/sda1" || got[0].Mountpoint != "/srv" || got[0].Fstype != "ext4" {
		t.Errorf("partition 0 = %+v", got[0])
	}

	all, err := r.Partitions(context.Background(), true)
	if err != nil {
		t.Fatalf("Partitions(true) error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Partitions(true) returned %d entries, want 3", len(all))
	}
}

func TestLinuxReaderListSkipsUnreadableMounts(t *testing.T) {
	mountpoint := t.TempDir()
	r := newTestReader(t, mountpoint)

	got, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(got))
	}
	if got[0].Partition.Mountpoint != mountpoint || got[0].Usage.Path != mountpoint {
		t.Errorf("List()[0] = %+v", got[0])
	}
}

func TestLinuxReaderPartitionsMissingProc(t *testing.T) {
	r := NewReaderWithRoots(fsutil.Roots{Proc: t.TempDir(), Sys: t.TempDir()})

	if _, err := r.Partitions(context.Background(), false); !errors.Is(err, platform.ErrSourceUnavailable) {
		t.Errorf("Partitions() error = %v, want ErrSourceUnavailable", err)
	}
}
