package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	return isSupported(GetOS())
}

func isSupported(os SupportedOS) bool {
	return os == Linux || os == Windows
}

// ValidateSupport returns an error wrapping ErrUnsupported if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("operating system %s: %w (supported: linux, windows)", runtime.GOOS, ErrUnsupported)
	}
	return nil
}

// Unsupported builds the error returned by fallback readers for a named concern
func Unsupported(concern string) error {
	return fmt.Errorf("%s monitoring on %s: %w", concern, runtime.GOOS, ErrUnsupported)
}
