package temps

import (
	"context"
	"strings"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// Sensor is one temperature reading in degrees Celsius. High and Critical
// are 0 when the sensor does not report a threshold.
type Sensor struct {
	Key         string  `json:"key" yaml:"key"`
	Temperature float64 `json:"temperature_celsius" yaml:"temperature_celsius"`
	High        float64 `json:"high_celsius" yaml:"high_celsius"`
	Critical    float64 `json:"critical_celsius" yaml:"critical_celsius"`
}

// Info splits the host's sensors into CPU package/core sensors and the rest
type Info struct {
	CPU   []Sensor `json:"cpu" yaml:"cpu"`
	Other []Sensor `json:"other" yaml:"other"`
}

// Reader interface for temperature monitoring
type Reader interface {
	Sensors(ctx context.Context) (*Info, error)
}

// NewReader creates a new temperature reader for the current platform
func NewReader() Reader {
	return newPlatformReader(fsutil.DefaultRoots())
}

// NewReaderWithRoots creates a temperature reader reading sysfs from roots
func NewReaderWithRoots(roots fsutil.Roots) Reader {
	return newPlatformReader(roots)
}

// cpuSensorMarkers are substrings of hwmon driver names, labels and ACPI
// zone names that belong to the processor
var cpuSensorMarkers = []string{
	"coretemp", "k10temp", "k8temp", "zenpower", "x86_pkg_temp",
	"cpu", "core_", "package_id", "tctl", "tdie", "soc_thermal",
}

func isCPUSensor(key string) bool {
	key = strings.ToLower(key)
	for _, marker := range cpuSensorMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

func classify(sensors []Sensor) *Info {
	info := &Info{CPU: []Sensor{}, Other: []Sensor{}}
	for _, s := range sensors {
		if isCPUSensor(s.Key) {
			info.CPU = append(info.CPU, s)
		} else {
			info.Other = append(info.Other, s)
		}
	}
	return info
}
