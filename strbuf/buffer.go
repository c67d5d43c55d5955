package strbuf

import (
	"unsafe"

	"github.com/cwbudde/algo-strbuf/internal/bytealg"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

// Buffer is the capability set shared by Fixed and Growable.
//
// Derived operations (AppendString, AppendInt, ...) go through the
// implementation's own Append, so a Growable used as a Buffer still grows.
type Buffer interface {
	Len() int
	Cap() int
	Available() int
	Empty() bool
	View() View
	String() string
	Bytes() []byte
	CString() []byte

	At(i int) byte
	Byte(i int) byte
	SetByte(i int, c byte)

	Equal(o View) bool
	Compare(o View) int

	Reset()
	Assign(src View) bool
	AssignString(s string) bool
	Append(src View) bool
	AppendString(s string) bool
	AppendByte(c byte) bool
	AppendInt(n int64) bool
	AppendFloat(f float64) bool
	Replace(old, repl View) bool
	ReplaceString(old, repl string) bool
}

var (
	_ Buffer = (*Fixed)(nil)
	_ Buffer = (*Growable)(nil)
)

// store is the storage and the in-place primitives behind both buffer
// types. buf holds capacity+1 bytes so buf[n] can always be the zero
// terminator; it is nil only for a Growable that owns nothing.
type store struct {
	buf []byte
	n   int
	cfg Config
}

// Len returns the number of content bytes.
func (s *store) Len() int { return s.n }

// Cap returns the number of content bytes the storage can hold, not
// counting the terminator.
func (s *store) Cap() int {
	if len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - 1
}

// Available returns Cap() - Len().
func (s *store) Available() int { return s.Cap() - s.n }

// Empty reports whether Len() is zero.
func (s *store) Empty() bool { return s.n == 0 }

// View borrows the current content. See the View lifetime rules.
func (s *store) View() View { return View{b: s.buf[:s.n:s.n]} }

// Bytes returns the content bytes, aliasing the storage.
func (s *store) Bytes() []byte { return s.buf[:s.n:s.n] }

// String returns a copy of the content.
func (s *store) String() string { return string(s.buf[:s.n]) }

// CString returns the content followed by its zero terminator, for code that
// expects a NUL-terminated string. It aliases the storage and must be treated
// as read-only.
func (s *store) CString() []byte {
	if s.buf == nil {
		return []byte{0}
	}
	return s.buf[: s.n+1 : s.n+1]
}

// At returns the byte at i, or 0 with an OutOfRange diagnostic.
func (s *store) At(i int) byte {
	if i < 0 || i >= s.n {
		s.cfg.sink().Report(diag.Diagnostic{Kind: diag.OutOfRange, Op: "at", Len: s.n, Cap: s.Cap(), Index: i})
		return 0
	}
	return s.buf[i]
}

// Byte returns the byte at i. The caller guarantees 0 <= i < Len().
func (s *store) Byte(i int) byte { return s.buf[:s.n][i] }

// SetByte overwrites the byte at i. The caller guarantees 0 <= i < Len().
func (s *store) SetByte(i int, c byte) { s.buf[:s.n][i] = c }

// Equal reports whether the content equals o.
func (s *store) Equal(o View) bool { return s.View().Equal(o) }

// Compare orders the content against o like View.Compare.
func (s *store) Compare(o View) int { return s.View().Compare(o) }

// Reset empties the content and keeps the storage.
func (s *store) Reset() { s.setLen(0) }

func (s *store) setLen(n int) {
	s.n = n
	if s.buf != nil {
		s.buf[n] = 0
	}
}

func (s *store) report(kind diag.Kind, op string, need, wrote int) {
	s.cfg.sink().Report(diag.Diagnostic{
		Kind:  kind,
		Op:    op,
		Len:   s.n,
		Cap:   s.Cap(),
		Need:  need,
		Wrote: wrote,
	})
}

// assign overwrites the content with src, keeping at most Cap() bytes.
func (s *store) assign(op string, src []byte) bool {
	n := len(src)
	if capacity := s.Cap(); n > capacity {
		if s.cfg.Strict {
			s.report(diag.Rejected, op, n, 0)
			return false
		}
		s.report(diag.Truncated, op, n, capacity)
		n = capacity
	}
	if n > 0 {
		bytealg.Move(s.buf[:n], src[:n])
	}
	s.setLen(n)
	return true
}

// append writes src after the content, keeping at most Available() bytes.
func (s *store) append(op string, src []byte) bool {
	n := len(src)
	if room := s.Available(); n > room {
		if s.cfg.Strict {
			s.report(diag.Rejected, op, n, 0)
			return false
		}
		s.report(diag.Truncated, op, n, room)
		n = room
	}
	if n == 0 {
		return true
	}
	bytealg.Move(s.buf[s.n:s.n+n], src[:n])
	s.setLen(s.n + n)
	return true
}

// find returns the index of the first old in the content, or NotFound.
func (s *store) find(old []byte) int {
	return bytealg.Index(s.buf[:s.n], old)
}

// replaceAt swaps the len(old) bytes at the match index for repl. It does
// nothing and returns false if the result would exceed Cap().
func (s *store) replaceAt(op string, at, oldLen int, repl []byte) bool {
	total := s.n - oldLen + len(repl)
	if total > s.Cap() {
		s.report(diag.Rejected, op, total, 0)
		return false
	}
	if overlaps(s.buf, repl) {
		repl = append([]byte(nil), repl...)
	}

	// Shift the tail first so repl lands in a gap of exactly its size.
	// Move handles the overlap in either direction.
	tail := at + oldLen
	bytealg.Move(s.buf[at+len(repl):total], s.buf[tail:s.n])
	bytealg.Move(s.buf[at:at+len(repl)], repl)
	s.setLen(total)
	return true
}

// replace substitutes the first occurrence of old with repl.
func (s *store) replace(op string, old, repl []byte) bool {
	at := s.find(old)
	if at < 0 {
		return false
	}
	return s.replaceAt(op, at, len(old), repl)
}

// overlaps reports whether b points into the storage of a.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return b0 < a0+uintptr(len(a)) && a0 < b0+uintptr(len(b))
}
