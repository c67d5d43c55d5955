package strbuf

import (
	"io"
	"unsafe"

	"github.com/cwbudde/algo-strbuf/internal/bytealg"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

// NotFound is returned by searches that find nothing.
const NotFound = -1

// View is a read-only window on bytes owned by someone else.
//
// The zero View is empty. A View taken from a Fixed or Growable is
// invalidated by any later mutation or release of that buffer.
type View struct {
	b []byte
}

// ViewOf borrows b.
func ViewOf(b []byte) View {
	return View{b: b}
}

// ViewString borrows the bytes of s without copying. The bytes must not be
// modified through the view.
func ViewString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// ViewCString borrows b up to, not including, its first zero byte, or all
// of b when it has none. A nil b gives the empty View and a NilInput
// diagnostic.
func ViewCString(b []byte) View {
	if b == nil {
		diag.Default().Report(diag.Diagnostic{Kind: diag.NilInput, Op: "view.cstring"})
		return View{}
	}
	if n := bytealg.IndexByte(b, 0); n >= 0 {
		return View{b: b[:n]}
	}
	return View{b: b}
}

// Len returns the number of bytes in v.
func (v View) Len() int { return len(v.b) }

// Empty reports whether v has no bytes.
func (v View) Empty() bool { return len(v.b) == 0 }

// Bytes returns the borrowed bytes. Callers must not modify them.
func (v View) Bytes() []byte { return v.b }

// String returns a copy of the bytes as a string.
func (v View) String() string { return string(v.b) }

// At returns the byte at i, or 0 with an OutOfRange diagnostic when i is
// not in [0, Len()).
func (v View) At(i int) byte {
	if i < 0 || i >= len(v.b) {
		diag.Default().Report(diag.Diagnostic{Kind: diag.OutOfRange, Op: "view.at", Len: len(v.b), Index: i})
		return 0
	}
	return v.b[i]
}

// Byte returns the byte at i. The caller guarantees i is in range.
func (v View) Byte(i int) byte { return v.b[i] }

// Compare returns -1, 0 or +1. Bytes are compared over the common prefix;
// if that is equal the shorter view sorts first.
func (v View) Compare(o View) int {
	return bytealg.Compare(v.b, o.b)
}

// Equal reports whether v and o hold the same bytes.
func (v View) Equal(o View) bool {
	return bytealg.Equal(v.b, o.b)
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return v.Equal(ViewString(s))
}

// Less reports whether v sorts before o.
func (v View) Less(o View) bool {
	return v.Compare(o) < 0
}

// StartsWith reports whether prefix is a prefix of v. The empty prefix
// always matches.
func (v View) StartsWith(prefix View) bool {
	return bytealg.HasPrefix(v.b, prefix.b)
}

// Find returns the index of the first occurrence of needle, or NotFound.
// An empty needle is found at 0.
func (v View) Find(needle View) int {
	return bytealg.Index(v.b, needle.b)
}

// IndexByte returns the index of the first c in v, or NotFound.
func (v View) IndexByte(c byte) int {
	return bytealg.IndexByte(v.b, c)
}

// WriteTo writes the bytes of v to w.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if len(v.b) == 0 {
		return 0, nil
	}
	n, err := w.Write(v.b)
	return int64(n), err
}
