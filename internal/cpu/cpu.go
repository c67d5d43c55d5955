// Package cpu reports the processor features that decide which byte kernels
// the string buffers run on.
//
// Detection runs once on first use and is cached. Tests and the command line
// tool can override the result with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel names the vector instruction set a kernel requires.
type SIMDLevel int

const (
	// SIMDNone marks portable Go code with no vector requirement.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the amd64 baseline.
	SIMDSSE2

	// SIMDAVX2 is 256-bit integer SIMD on amd64.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a short name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the capabilities relevant to byte search and copy.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts selection to the portable kernels.
	ForceGeneric bool

	Architecture string
}

var (
	mu       sync.RWMutex
	detected *Features
	forced   *Features
)

// DetectFeatures returns the features of the running processor, or the
// forced set if one is installed.
func DetectFeatures() Features {
	mu.RLock()
	if forced != nil {
		f := *forced
		mu.RUnlock()
		return f
	}
	if detected != nil {
		f := *detected
		mu.RUnlock()
		return f
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if forced != nil {
		return *forced
	}
	if detected == nil {
		f := detectFeaturesImpl()
		detected = &f
	}
	return *detected
}

// SetForcedFeatures overrides detection until ResetDetection is called.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()
	forced = &f
}

// ResetDetection drops any forced features and the cached detection result.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()
	forced = nil
	detected = nil
}

// Supports reports whether a kernel built for level can run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
