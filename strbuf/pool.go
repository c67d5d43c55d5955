package strbuf

import "sync"

// Pool recycles Growable strings to cut allocation in hot loops.
type Pool struct {
	pool     sync.Pool
	capacity int
}

// NewPool returns a Pool whose strings start with at least capacity bytes
// and carry opts.
func NewPool(capacity int, opts ...Option) *Pool {
	p := &Pool{capacity: max(capacity, MinCapacity)}
	p.pool.New = func() any {
		return NewGrowable(p.capacity, opts...)
	}
	return p
}

// Get returns an empty Growable with at least the pool capacity.
// Return it with Put when done.
func (p *Pool) Get() *Growable {
	g := p.pool.Get().(*Growable)
	g.Reset()
	g.Resize(p.capacity)
	return g
}

// Put hands g back for reuse. The caller must not use g afterwards.
// Strings that no longer own a buffer are not pooled.
func (p *Pool) Put(g *Growable) {
	if g == nil || g.buf == nil {
		return
	}
	g.Reset()
	p.pool.Put(g)
}
