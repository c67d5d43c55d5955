package strbuf

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-strbuf/internal/bytealg"
)

const (
	// MinCapacity is the smallest capacity a Growable allocates.
	MinCapacity = 8

	// MaxCapacity is the largest capacity Resize accepts.
	MaxCapacity = math.MaxInt - growStep - 1

	// Below smallCapacity the capacity doubles on growth; above it grows
	// by growStep.
	smallCapacity = 64
	growStep      = 16
)

// ErrTooLarge is the panic value when a Growable is asked for more than
// MaxCapacity bytes.
var ErrTooLarge = errors.New("strbuf: capacity too large")

// Growable is a string on a heap buffer it owns exclusively. Assign, Append
// and Replace grow the buffer first, so they never truncate.
//
// A Growable can give its buffer away with Move; the source is left empty,
// with capacity 0 and no storage, and can be reused.
type Growable struct {
	store
}

// NewGrowable returns an empty Growable with at least capacity bytes
// (never fewer than MinCapacity).
func NewGrowable(capacity int, opts ...Option) *Growable {
	g := &Growable{store: store{cfg: ApplyOptions(opts...)}}
	g.realloc(max(capacity, MinCapacity))
	return g
}

// NewGrowableString returns a Growable holding a copy of s.
func NewGrowableString(s string, opts ...Option) *Growable {
	return NewGrowableFrom(ViewString(s), opts...)
}

// NewGrowableFrom returns a Growable holding a copy of v.
func NewGrowableFrom(v View, opts ...Option) *Growable {
	g := NewGrowable(v.Len(), opts...)
	g.assign("assign", v.b)
	return g
}

// nextCapacity applies the growth policy for a buffer of capacity current
// that must hold need bytes.
func nextCapacity(current, need int) int {
	var c int
	switch {
	case current == 0:
		c = need
	case current < smallCapacity:
		c = current * 2
	default:
		c = current + growStep
	}
	if c < need {
		c = need + growStep
	}
	if c < MinCapacity {
		c = MinCapacity
	}
	return c
}

// Resize makes room for at least minCapacity bytes. It never shrinks.
// It panics with ErrTooLarge beyond MaxCapacity.
func (g *Growable) Resize(minCapacity int) {
	current := g.Cap()
	if minCapacity <= current {
		return
	}
	if minCapacity > MaxCapacity {
		panic(ErrTooLarge)
	}
	g.realloc(nextCapacity(current, minCapacity))
}

// Reserve makes room for extra more bytes after the content.
func (g *Growable) Reserve(extra int) {
	if extra > MaxCapacity-g.n {
		panic(ErrTooLarge)
	}
	g.Resize(g.n + extra)
}

// realloc moves the content and terminator into a new buffer of capacity c.
// The old buffer is dropped.
func (g *Growable) realloc(c int) {
	buf := make([]byte, c+1)
	bytealg.Move(buf, g.buf[:g.n])
	g.buf = buf
	g.setLen(g.n)
}

// Clone returns an independent copy whose buffer has the same capacity.
func (g *Growable) Clone() *Growable {
	c := &Growable{store: store{cfg: g.cfg}}
	c.realloc(max(g.Cap(), MinCapacity))
	bytealg.Move(c.buf, g.buf[:g.n])
	c.setLen(g.n)
	return c
}

// CopyFrom replaces the content with a copy of src's, growing as needed.
func (g *Growable) CopyFrom(src Buffer) bool {
	return g.Assign(src.View())
}

// Move transfers the buffer to a new Growable and leaves g empty with no
// storage.
func (g *Growable) Move() *Growable {
	m := &Growable{store: g.store}
	g.store = store{cfg: g.cfg}
	return m
}

// MoveFrom drops g's buffer and takes over src's, leaving src empty with no
// storage. Moving from g itself or from nil does nothing.
func (g *Growable) MoveFrom(src *Growable) {
	if src == nil || src == g {
		return
	}
	g.buf, g.n = src.buf, src.n
	src.buf, src.n = nil, 0
}

// Release drops the buffer. It is safe to call more than once, and g stays
// usable as an empty string.
func (g *Growable) Release() {
	g.buf = nil
	g.n = 0
}

// Assign replaces the content with src.
func (g *Growable) Assign(src View) bool {
	g.Resize(len(src.b))
	return g.assign("assign", src.b)
}

// AssignString replaces the content with s.
func (g *Growable) AssignString(s string) bool { return g.Assign(ViewString(s)) }

// Append adds src after the content.
func (g *Growable) Append(src View) bool {
	g.Reserve(len(src.b))
	return g.append("append", src.b)
}

// AppendString adds s after the content.
func (g *Growable) AppendString(s string) bool { return g.Append(ViewString(s)) }

// AppendByte adds c after the content.
func (g *Growable) AppendByte(c byte) bool { return appendByte(g, c) }

// AppendInt adds the decimal form of n.
func (g *Growable) AppendInt(n int64) bool { return appendInt(g, n) }

// AppendFloat adds f with two fraction digits.
func (g *Growable) AppendFloat(v float64) bool { return appendFloat(g, v) }

// Replace substitutes the first occurrence of old with repl, growing first
// if needed. It returns false only when old is absent.
func (g *Growable) Replace(old, repl View) bool {
	at := g.find(old.b)
	if at < 0 {
		return false
	}
	g.Resize(g.n - len(old.b) + len(repl.b))
	return g.replaceAt("replace", at, len(old.b), repl.b)
}

// ReplaceString is Replace for string arguments.
func (g *Growable) ReplaceString(old, repl string) bool {
	return g.Replace(ViewString(old), ViewString(repl))
}

// Write appends p. It always writes all of p.
func (g *Growable) Write(p []byte) (int, error) {
	g.Append(ViewOf(p))
	return len(p), nil
}
