package strbuf

import "strconv"

// The helpers below format into a scratch span and hand the result to the
// buffer's own Append, so the growable variant resizes before writing.

func appendByte(b Buffer, c byte) bool {
	scratch := [1]byte{c}
	return b.Append(ViewOf(scratch[:]))
}

func appendInt(b Buffer, n int64) bool {
	var scratch [20]byte
	return b.Append(ViewOf(strconv.AppendInt(scratch[:0], n, 10)))
}

// appendFloat writes f with two fraction digits, like "%.2f".
func appendFloat(b Buffer, f float64) bool {
	var scratch [32]byte
	return b.Append(ViewOf(strconv.AppendFloat(scratch[:0], f, 'f', 2, 64)))
}

// FromInt returns a Growable holding the decimal form of n.
func FromInt(n int64, opts ...Option) *Growable {
	g := NewGrowable(MinCapacity, opts...)
	g.AppendInt(n)
	return g
}

// FromFloat returns a Growable holding f with two fraction digits.
func FromFloat(f float64, opts ...Option) *Growable {
	g := NewGrowable(MinCapacity, opts...)
	g.AppendFloat(f)
	return g
}

// FromByte returns a Growable holding the single byte c.
func FromByte(c byte, opts ...Option) *Growable {
	g := NewGrowable(MinCapacity, opts...)
	g.AppendByte(c)
	return g
}
