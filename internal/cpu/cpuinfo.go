package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// finishFunc fills in fields a record's own lines did not carry, right
// before the record is appended.
type finishFunc func(*InfoStat)

// infoFold is the state threaded through assembleInfos. current.CPU < 0
// means no record has started yet. pendingName is the model name some
// kernels print once ahead of the first processor line.
type infoFold struct {
	done        []InfoStat
	current     InfoStat
	pendingName string
}

func newInfoFold() infoFold {
	return infoFold{current: InfoStat{CPU: -1, Cores: 1}}
}

// assembleInfos folds the "key: value" lines of a cpuinfo source into one
// InfoStat per processor block, in the order the blocks appear.
func assembleInfos(lines []string, finish finishFunc) ([]InfoStat, error) {
	fold := newInfoFold()
	for _, line := range lines {
		var err error
		fold, err = fold.step(line, finish)
		if err != nil {
			return nil, err
		}
	}
	return fold.flush(finish).done, nil
}

// flush emits the in-progress record, if one was started
func (f infoFold) flush(finish finishFunc) infoFold {
	if f.current.CPU < 0 {
		return f
	}
	rec := f.current
	if finish != nil {
		finish(&rec)
	}
	f.done = append(f.done, rec)
	f.current = InfoStat{CPU: -1, Cores: 1}
	return f
}

func (f infoFold) step(line string, finish finishFunc) (infoFold, error) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return f, nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	c := &f.current

	switch key {
	case "Processor":
		f.pendingName = value
	case "processor", "cpu number":
		f = f.flush(finish)
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return f, fmt.Errorf("%w: processor index %q: %w", platform.ErrMalformedRecord, value, err)
		}
		f.current = InfoStat{CPU: int32(n), Cores: 1, ModelName: f.pendingName}
	case "vendorId", "vendor_id":
		c.VendorID = value
		if strings.Contains(value, "S390") {
			f.pendingName = "S390"
		}
	case "CPU implementer":
		if code, err := strconv.ParseUint(value, 0, 8); err == nil {
			c.VendorID = implementerName(code)
		}
	case "cpu family":
		c.Family = value
	case "model", "CPU part":
		c.Model = value
		// arm64 kernels only print the part number, see arch/arm64/kernel/cpuinfo.c
		if c.VendorID == "ARM" {
			if part, err := strconv.ParseUint(value, 0, 16); err == nil {
				c.ModelName = armPartName(part)
			}
		}
	case "Model Name", "model name", "cpu":
		c.ModelName = value
		if strings.Contains(value, "POWER") {
			c.Model = strings.Fields(value)[0]
			c.Family = "POWER"
			c.VendorID = "IBM"
		}
	case "stepping", "revision", "CPU revision":
		if key == "revision" {
			value, _, _ = strings.Cut(value, ".")
		}
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return f, fmt.Errorf("%w: %s %q: %w", platform.ErrMalformedRecord, key, value, err)
		}
		c.Stepping = int32(n)
	case "cpu MHz", "clock", "cpu MHz dynamic":
		// overridden by cpuinfo_max_freq when available
		if mhz, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(value, "MHz", "", 1)), 64); err == nil {
			c.Mhz = mhz
		}
	case "cache size":
		if size, err := strconv.ParseInt(strings.TrimSpace(strings.Replace(value, "KB", "", 1)), 10, 32); err == nil {
			c.CacheSize = int32(size)
		}
	case "physical id":
		c.PhysicalID = value
	case "core id":
		c.CoreID = value
	case "flags", "Features":
		c.Flags = strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' '
		})
	case "microcode":
		c.Microcode = value
	}

	return f, nil
}

// maxFreqMhz converts a cpuinfo_max_freq reading to MHz. The file is in kHz,
// but some drivers report Hz, which shows up as an implausibly large value.
func maxFreqMhz(raw float64) float64 {
	if raw > 9999000 {
		return raw / 1000000.0
	}
	return raw / 1000.0
}

// physicalCoreCount counts distinct (physical id, core id) pairs, falling
// back to one core per record when the source carries no topology.
func physicalCoreCount(infos []InfoStat) int {
	type coreKey struct {
		physicalID string
		coreID     string
	}
	unique := make(map[coreKey]struct{})
	for _, info := range infos {
		if info.CoreID == "" {
			continue
		}
		unique[coreKey{info.PhysicalID, info.CoreID}] = struct{}{}
	}
	if len(unique) == 0 {
		return len(infos)
	}
	return len(unique)
}
