//go:build linux

package temps

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// LinuxReader implements temperature monitoring for Linux from hwmon and
// thermal zones under the sys root
type LinuxReader struct {
	roots fsutil.Roots
}

// newPlatformReader creates a new Linux temperature reader
func newPlatformReader(roots fsutil.Roots) Reader {
	return &LinuxReader{roots: roots}
}

// Sensors returns every readable sensor. Sensors whose files cannot be read
// are skipped.
func (r *LinuxReader) Sensors(ctx context.Context) (*Info, error) {
	ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{common.HostSysEnvKey: r.roots.Sys})

	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		var warns *host.Warnings
		if !errors.As(err, &warns) {
			return nil, fmt.Errorf("%w: %w", platform.ErrSourceUnavailable, err)
		}
	}

	sensors := make([]Sensor, 0, len(stats))
	for _, s := range stats {
		sensors = append(sensors, Sensor{
			Key:         s.SensorKey,
			Temperature: s.Temperature,
			High:        s.High,
			Critical:    s.Critical,
		})
	}
	return classify(sensors), nil
}
