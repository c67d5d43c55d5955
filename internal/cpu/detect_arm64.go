//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// ASIMD is mandatory on ARMv8, so HasNEON is expected to be set.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
