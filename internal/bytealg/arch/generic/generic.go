// Package generic implements the byte kernels as plain Go loops.
package generic

import "unsafe"

// Compare returns -1, 0 or +1. The common prefix decides first; when it is
// equal the shorter slice sorts first.
func Compare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b have the same length and bytes.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Index returns the first position of sep in s, -1 if absent, and 0 for an
// empty sep. It is the straightforward quadratic scan.
func Index(s, sep []byte) int {
	m := len(sep)
	if m == 0 {
		return 0
	}
	if m > len(s) {
		return -1
	}
	first := sep[0]
	for i := 0; i <= len(s)-m; i++ {
		if s[i] != first {
			continue
		}
		if Equal(s[i:i+m], sep) {
			return i
		}
	}
	return -1
}

// IndexByte returns the first position of c in s, or -1.
func IndexByte(s []byte, c byte) int {
	for i := range s {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// Move copies min(len(dst), len(src)) bytes from src to dst. When dst starts
// inside src the copy runs back to front so unread source bytes are not
// overwritten first.
func Move(dst, src []byte) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	if n == 0 {
		return 0
	}

	d := uintptr(unsafe.Pointer(unsafe.SliceData(dst)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	if d > s && d < s+uintptr(n) {
		for i := n - 1; i >= 0; i-- {
			dst[i] = src[i]
		}
		return n
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}
