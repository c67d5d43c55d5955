// Package registry holds the byte kernel variants available to bytealg.
//
// Implementation packages register an OpEntry from init. bytealg picks the
// highest-priority entry the detected CPU supports.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-strbuf/internal/cpu"
)

// OpEntry is one complete set of byte kernels.
type OpEntry struct {
	// Name identifies the variant ("generic", "native").
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	Priority int

	// Compare returns -1, 0 or +1 comparing a and b lexicographically,
	// a shorter common prefix sorting first.
	Compare func(a, b []byte) int

	// Equal reports whether a and b hold the same bytes.
	Equal func(a, b []byte) bool

	// Index returns the first index of sep in s, or -1. An empty sep
	// matches at 0.
	Index func(s, sep []byte) int

	// IndexByte returns the first index of c in s, or -1.
	IndexByte func(s []byte, c byte) int

	// Move copies min(len(dst), len(src)) bytes and must be correct when
	// the ranges overlap.
	Move func(dst, src []byte) int
}

// OpRegistry is a priority-ordered set of OpEntry values.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry bytealg selects from.
var Global = &OpRegistry{}

// Register adds entry. Registration is expected to finish before Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the best entry for features, or nil when nothing
// compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].Priority > r.entries[j].Priority
		})
		r.sorted = true
	}

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}
	return nil
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes all entries. Only meant for tests on private registries.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
