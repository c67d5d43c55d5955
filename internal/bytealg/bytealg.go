// Package bytealg is the byte kernel layer under strbuf: comparison, search
// and overlap-safe moves, dispatched to the best variant for the CPU.
package bytealg

import (
	"sync/atomic"

	"github.com/cwbudde/algo-strbuf/internal/bytealg/registry"
	"github.com/cwbudde/algo-strbuf/internal/cpu"
)

// active caches the chosen entry; nil means look up on next use.
var active atomic.Pointer[registry.OpEntry]

func selectOps() *registry.OpEntry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("bytealg: no kernel implementation registered")
	}
	if entry.Compare == nil || entry.Equal == nil || entry.Index == nil ||
		entry.IndexByte == nil || entry.Move == nil {
		panic("bytealg: selected implementation " + entry.Name + " is incomplete")
	}
	return entry
}

func ops() *registry.OpEntry {
	if e := active.Load(); e != nil {
		return e
	}
	e := selectOps()
	active.CompareAndSwap(nil, e)
	return e
}

// Reselect discards the cached kernel choice so the next call consults
// cpu.DetectFeatures again. Call it after cpu.SetForcedFeatures or
// cpu.ResetDetection.
func Reselect() {
	active.Store(nil)
}

// Implementation returns the name of the selected kernel variant.
func Implementation() string {
	return ops().Name
}

// Compare returns -1, 0 or +1 comparing a and b byte by byte; if the shared
// prefix is equal the shorter slice sorts first.
func Compare(a, b []byte) int {
	return ops().Compare(a, b)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return ops().Equal(a, b)
}

// Index returns the first index of sep in s, or -1. An empty sep matches at 0.
func Index(s, sep []byte) int {
	return ops().Index(s, sep)
}

// IndexByte returns the first index of c in s, or -1.
func IndexByte(s []byte, c byte) int {
	return ops().IndexByte(s, c)
}

// HasPrefix reports whether s begins with prefix. An empty prefix always matches.
func HasPrefix(s, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return ops().Equal(s[:len(prefix)], prefix)
}

// Move copies min(len(dst), len(src)) bytes and returns the count. The
// ranges may overlap.
func Move(dst, src []byte) int {
	return ops().Move(dst, src)
}
