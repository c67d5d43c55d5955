package strbuf

import (
	"io"

	"github.com/cwbudde/algo-strbuf/internal/bytealg"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

// Fixed is a string with a capacity chosen at construction. Its storage is
// never reallocated or shared with another Fixed.
//
// On overflow Assign and Append write the prefix that fits, report a
// Truncated diagnostic and return true (or, with WithStrict, write nothing
// and return false). Replace never truncates: if the result would not fit
// it returns false and leaves the content untouched.
type Fixed struct {
	store
}

// NewFixed returns an empty Fixed able to hold capacity bytes.
// A negative capacity is treated as 0.
func NewFixed(capacity int, opts ...Option) *Fixed {
	if capacity < 0 {
		capacity = 0
	}
	return newFixed(make([]byte, capacity+1), opts)
}

// NewFixedOn returns an empty Fixed that uses storage in place, for example
// an array on the caller's stack or embedded in a struct. The capacity is
// len(storage)-1; one byte is reserved for the terminator. The caller must
// not touch storage while the Fixed is in use. Nil storage gives a Fixed of
// capacity 0 and a NilInput diagnostic.
func NewFixedOn(storage []byte, opts ...Option) *Fixed {
	if len(storage) == 0 {
		f := newFixed(make([]byte, 1), opts)
		if storage == nil {
			f.cfg.sink().Report(diag.Diagnostic{Kind: diag.NilInput, Op: "fixed.on"})
		}
		return f
	}
	return newFixed(storage[:len(storage):len(storage)], opts)
}

// NewFixedString returns a Fixed of the given capacity holding s, truncated
// if it does not fit.
func NewFixedString(capacity int, s string, opts ...Option) *Fixed {
	f := NewFixed(capacity, opts...)
	f.AssignString(s)
	return f
}

// NewFixedFrom returns a Fixed of the given capacity holding a copy of v,
// truncated if it does not fit.
func NewFixedFrom(capacity int, v View, opts ...Option) *Fixed {
	f := NewFixed(capacity, opts...)
	f.Assign(v)
	return f
}

func newFixed(storage []byte, opts []Option) *Fixed {
	f := &Fixed{store: store{buf: storage, cfg: ApplyOptions(opts...)}}
	f.setLen(0)
	return f
}

// Clone returns an independent copy with the same capacity and settings.
func (f *Fixed) Clone() *Fixed {
	c := &Fixed{store: store{buf: make([]byte, len(f.buf)), cfg: f.cfg}}
	bytealg.Move(c.buf, f.buf[:f.n])
	c.setLen(f.n)
	return c
}

// CopyFrom replaces the content with a copy of src's, subject to the
// truncation policy.
func (f *Fixed) CopyFrom(src Buffer) bool {
	return f.Assign(src.View())
}

// Assign replaces the content with src.
func (f *Fixed) Assign(src View) bool { return f.assign("assign", src.b) }

// AssignString replaces the content with s.
func (f *Fixed) AssignString(s string) bool { return f.Assign(ViewString(s)) }

// Append adds src after the content.
func (f *Fixed) Append(src View) bool { return f.append("append", src.b) }

// AppendString adds s after the content.
func (f *Fixed) AppendString(s string) bool { return f.Append(ViewString(s)) }

// AppendByte adds c after the content.
func (f *Fixed) AppendByte(c byte) bool { return appendByte(f, c) }

// AppendInt adds the decimal form of n.
func (f *Fixed) AppendInt(n int64) bool { return appendInt(f, n) }

// AppendFloat adds f with two fraction digits.
func (f *Fixed) AppendFloat(v float64) bool { return appendFloat(f, v) }

// Replace substitutes the first occurrence of old with repl. It returns
// false, changing nothing, if old is absent or the result would not fit.
func (f *Fixed) Replace(old, repl View) bool { return f.replace("replace", old.b, repl.b) }

// ReplaceString is Replace for string arguments.
func (f *Fixed) ReplaceString(old, repl string) bool {
	return f.Replace(ViewString(old), ViewString(repl))
}

// Write appends p, returning io.ErrShortWrite if not all of it fit.
func (f *Fixed) Write(p []byte) (int, error) {
	before := f.n
	f.Append(ViewOf(p))
	if n := f.n - before; n < len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}
