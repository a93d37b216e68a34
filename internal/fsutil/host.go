package fsutil

import (
	"os"
	"path/filepath"
)

const (
	DefaultProcRoot = "/proc"
	DefaultSysRoot  = "/sys"
)

// Roots locates the procfs and sysfs mounts to read from. Containers that
// bind-mount the host's /proc elsewhere point these at the mount.
type Roots struct {
	Proc string
	Sys  string
}

// DefaultRoots returns /proc and /sys, overridden by HOST_PROC and HOST_SYS
func DefaultRoots() Roots {
	return Roots{
		Proc: envOr("HOST_PROC", DefaultProcRoot),
		Sys:  envOr("HOST_SYS", DefaultSysRoot),
	}
}

// ProcPath joins elem onto the proc root
func (r Roots) ProcPath(elem ...string) string {
	return filepath.Join(append([]string{r.Proc}, elem...)...)
}

// SysPath joins elem onto the sys root
func (r Roots) SysPath(elem ...string) string {
	return filepath.Join(append([]string{r.Sys}, elem...)...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
