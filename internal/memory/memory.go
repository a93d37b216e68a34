package memory

import (
	"context"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// VirtualMemoryStat represents physical memory usage in bytes
type VirtualMemoryStat struct {
	Total       uint64  `json:"total" yaml:"total"`
	Available   uint64  `json:"available" yaml:"available"`
	Used        uint64  `json:"used" yaml:"used"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
	Free        uint64  `json:"free" yaml:"free"`

	Active   uint64 `json:"active" yaml:"active"`
	Inactive uint64 `json:"inactive" yaml:"inactive"`

	// Linux specific, see Documentation/filesystems/proc.rst
	Buffers        uint64 `json:"buffers" yaml:"buffers"`
	Cached         uint64 `json:"cached" yaml:"cached"`
	WriteBack      uint64 `json:"write_back" yaml:"write_back"`
	Dirty          uint64 `json:"dirty" yaml:"dirty"`
	WriteBackTmp   uint64 `json:"write_back_tmp" yaml:"write_back_tmp"`
	Shared         uint64 `json:"shared" yaml:"shared"`
	Slab           uint64 `json:"slab" yaml:"slab"`
	SReclaimable   uint64 `json:"sreclaimable" yaml:"sreclaimable"`
	SUnreclaim     uint64 `json:"sunreclaim" yaml:"sunreclaim"`
	PageTables     uint64 `json:"page_tables" yaml:"page_tables"`
	SwapCached     uint64 `json:"swap_cached" yaml:"swap_cached"`
	CommitLimit    uint64 `json:"commit_limit" yaml:"commit_limit"`
	CommittedAS    uint64 `json:"committed_as" yaml:"committed_as"`
	HighTotal      uint64 `json:"high_total" yaml:"high_total"`
	HighFree       uint64 `json:"high_free" yaml:"high_free"`
	LowTotal       uint64 `json:"low_total" yaml:"low_total"`
	LowFree        uint64 `json:"low_free" yaml:"low_free"`
	SwapTotal      uint64 `json:"swap_total" yaml:"swap_total"`
	SwapFree       uint64 `json:"swap_free" yaml:"swap_free"`
	Mapped         uint64 `json:"mapped" yaml:"mapped"`
	VmallocTotal   uint64 `json:"vmalloc_total" yaml:"vmalloc_total"`
	VmallocUsed    uint64 `json:"vmalloc_used" yaml:"vmalloc_used"`
	VmallocChunk   uint64 `json:"vmalloc_chunk" yaml:"vmalloc_chunk"`
	HugePagesTotal uint64 `json:"huge_pages_total" yaml:"huge_pages_total"`
	HugePagesFree  uint64 `json:"huge_pages_free" yaml:"huge_pages_free"`
	HugePagesRsvd  uint64 `json:"huge_pages_rsvd" yaml:"huge_pages_rsvd"`
	HugePagesSurp  uint64 `json:"huge_pages_surp" yaml:"huge_pages_surp"`
	HugePageSize   uint64 `json:"huge_page_size" yaml:"huge_page_size"`
	AnonHugePages  uint64 `json:"anon_huge_pages" yaml:"anon_huge_pages"`
}

// SwapMemoryStat represents swap usage in bytes and paging counters
type SwapMemoryStat struct {
	Total       uint64  `json:"total" yaml:"total"`
	Used        uint64  `json:"used" yaml:"used"`
	Free        uint64  `json:"free" yaml:"free"`
	UsedPercent float64 `json:"used_percent" yaml:"used_percent"`
	Sin         uint64  `json:"sin" yaml:"sin"`
	Sout        uint64  `json:"sout" yaml:"sout"`
	PgIn        uint64  `json:"pg_in" yaml:"pg_in"`
	PgOut       uint64  `json:"pg_out" yaml:"pg_out"`
	PgFault     uint64  `json:"pg_fault" yaml:"pg_fault"`
	PgMajFault  uint64  `json:"pg_maj_fault" yaml:"pg_maj_fault"`
}

// SwapDevice is one active swap area
type SwapDevice struct {
	Name      string `json:"name" yaml:"name"`
	UsedBytes uint64 `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes uint64 `json:"free_bytes" yaml:"free_bytes"`
}

// Reader interface for memory monitoring
type Reader interface {
	VirtualMemory(ctx context.Context) (*VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*SwapMemoryStat, error)
	SwapDevices(ctx context.Context) ([]*SwapDevice, error)
}

// NewReader creates a new memory reader for the current platform
func NewReader() Reader {
	return newPlatformReader(fsutil.DefaultRoots())
}

// NewReaderWithRoots creates a memory reader reading procfs from roots
func NewReaderWithRoots(roots fsutil.Roots) Reader {
	return newPlatformReader(roots)
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100.0
}
