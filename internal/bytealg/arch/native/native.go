// Package native binds the byte kernels to the runtime's own routines.
//
// The bytes package and the copy builtin are backed by assembly on amd64
// (SSE2/AVX2) and arm64 (NEON), so this variant outranks the plain loops
// wherever those instruction sets are present.
package native

import "bytes"

// Compare wraps bytes.Compare.
func Compare(a, b []byte) int { return bytes.Compare(a, b) }

// Equal wraps bytes.Equal.
func Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// Index wraps bytes.Index.
func Index(s, sep []byte) int { return bytes.Index(s, sep) }

// IndexByte wraps bytes.IndexByte.
func IndexByte(s []byte, c byte) int { return bytes.IndexByte(s, c) }

// Move uses copy, which has memmove semantics for overlapping slices.
func Move(dst, src []byte) int { return copy(dst, src) }
