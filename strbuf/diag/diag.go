package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// Truncated means only the prefix that fit was written.
	Truncated Kind = iota

	// Rejected means the operation needed more capacity than the buffer
	// has and left it unchanged.
	Rejected

	// OutOfRange means a checked read asked for an index past the end.
	OutOfRange

	// NilInput means nil storage was passed where bytes were expected and
	// was treated as empty. It is logged at debug level.
	NilInput
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case Rejected:
		return "rejected"
	case OutOfRange:
		return "index out of range"
	case NilInput:
		return "nil input"
	default:
		return "unknown"
	}
}

// Diagnostic describes one advisory condition.
type Diagnostic struct {
	Kind Kind
	Op   string // operation that raised it, e.g. "append"

	Len   int // buffer length before the operation
	Cap   int // buffer capacity
	Need  int // bytes the operation asked for
	Wrote int // bytes actually written (Truncated only)
	Index int // requested index (OutOfRange only)
}

// String renders d as a single human-readable line.
func (d Diagnostic) String() string {
	switch d.Kind {
	case Truncated:
		return fmt.Sprintf("%s: truncated, wrote %d of %d bytes (len %d, cap %d)",
			d.Op, d.Wrote, d.Need, d.Len, d.Cap)
	case Rejected:
		return fmt.Sprintf("%s: rejected, needs %d bytes (len %d, cap %d)",
			d.Op, d.Need, d.Len, d.Cap)
	case OutOfRange:
		return fmt.Sprintf("%s: index %d out of range (len %d)", d.Op, d.Index, d.Len)
	default:
		return fmt.Sprintf("%s: %s", d.Op, d.Kind)
	}
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

type nopSink struct{}

func (nopSink) Report(Diagnostic) {}

// Nop returns a Sink that discards everything.
func Nop() Sink { return nopSink{} }

// LogSink writes each diagnostic as a structured zerolog event.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink returns a Sink logging through l.
func NewLogSink(l zerolog.Logger) *LogSink {
	return &LogSink{logger: l}
}

// NewConsoleSink returns a Sink writing plain console lines to w.
func NewConsoleSink(w io.Writer) *LogSink {
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return NewLogSink(zerolog.New(out))
}

// Report implements Sink.
func (s *LogSink) Report(d Diagnostic) {
	var ev *zerolog.Event
	switch d.Kind {
	case OutOfRange:
		ev = s.logger.Error().Int("index", d.Index)
	case NilInput:
		ev = s.logger.Debug()
	default:
		ev = s.logger.Warn().Int("need", d.Need)
	}
	ev.Str("op", d.Op).
		Str("kind", d.Kind.String()).
		Int("len", d.Len).
		Int("cap", d.Cap).
		Msg(d.String())
}

var (
	defaultMu   sync.RWMutex
	defaultSink Sink = NewConsoleSink(os.Stderr)
)

// Default returns the process-wide sink used when a buffer has none of its
// own, and by View.
func Default() Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}

// SetDefault replaces the process-wide sink and returns the previous one.
// A nil s restores the stderr console sink.
func SetDefault(s Sink) Sink {
	if s == nil {
		s = NewConsoleSink(os.Stderr)
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultSink
	defaultSink = s
	return prev
}

// Recorder keeps every diagnostic it receives.
type Recorder struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report implements Sink.
func (r *Recorder) Report(d Diagnostic) {
	r.mu.Lock()
	r.items = append(r.items, d)
	r.mu.Unlock()
}

// Diagnostics returns a copy of what has been recorded.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns how many diagnostics of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.items {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}
