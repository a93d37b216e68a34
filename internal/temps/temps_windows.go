//go:build windows

package temps

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
)

// WindowsReader implements temperature monitoring for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows temperature reader
func newPlatformReader(fsutil.Roots) Reader {
	return &WindowsReader{}
}

// Win32_TemperatureProbe represents WMI temperature probe data; readings
// are tenths of a Kelvin
type Win32_TemperatureProbe struct {
	DeviceID        string
	Name            string
	CurrentReading  *uint32
	NominalReading  *uint32
	MaxReadableHigh *uint32
}

// Win32_PerfFormattedData_Counters_ThermalZoneInformation represents
// thermal zone data; Temperature is in Kelvin
type Win32_PerfFormattedData_Counters_ThermalZoneInformation struct {
	Name        string
	Temperature uint32
}

const zeroCelsius = 273.15

func tenthsKelvin(v uint32) float64 {
	return float64(v)/10.0 - zeroCelsius
}

// Sensors returns temperature probes, falling back to ACPI thermal zones
// when no probe reports a reading
func (r *WindowsReader) Sensors(ctx context.Context) (*Info, error) {
	sensors, probeErr := temperatureProbes()
	if probeErr == nil && len(sensors) > 0 {
		return classify(sensors), nil
	}

	sensors, err := thermalZones()
	if err != nil {
		return nil, fmt.Errorf("%w: thermal zones: %w", platform.ErrSourceUnavailable, err)
	}
	return classify(sensors), nil
}

func temperatureProbes() ([]Sensor, error) {
	var probes []Win32_TemperatureProbe
	if err := wmi.Query(wmi.CreateQuery(&probes, ""), &probes); err != nil {
		return nil, err
	}

	var sensors []Sensor
	for _, probe := range probes {
		if probe.CurrentReading == nil {
			continue
		}

		s := Sensor{Key: probe.DeviceID, Temperature: tenthsKelvin(*probe.CurrentReading)}
		if probe.Name != "" {
			s.Key = probe.Name
		}
		if probe.MaxReadableHigh != nil {
			s.Critical = tenthsKelvin(*probe.MaxReadableHigh)
		}
		if probe.NominalReading != nil {
			s.High = tenthsKelvin(*probe.NominalReading)
		}
		sensors = append(sensors, s)
	}
	return sensors, nil
}

func thermalZones() ([]Sensor, error) {
	var zones []Win32_PerfFormattedData_Counters_ThermalZoneInformation
	if err := wmi.Query(wmi.CreateQuery(&zones, ""), &zones); err != nil {
		return nil, err
	}

	sensors := make([]Sensor, 0, len(zones))
	for _, zone := range zones {
		sensors = append(sensors, Sensor{
			Key:         zone.Name,
			Temperature: float64(zone.Temperature) - zeroCelsius,
		})
	}
	return sensors, nil
}
