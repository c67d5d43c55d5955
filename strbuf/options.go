package strbuf

import "github.com/cwbudde/algo-strbuf/strbuf/diag"

// Config holds per-buffer settings.
type Config struct {
	// Sink receives diagnostics. Nil means diag.Default() at report time.
	Sink diag.Sink

	// Strict makes Assign and Append on a Fixed fail without writing
	// anything when the input does not fit, instead of truncating.
	Strict bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{}
}

// WithSink routes the buffer's diagnostics to s. A nil s is ignored.
func WithSink(s diag.Sink) Option {
	return func(cfg *Config) {
		if s != nil {
			cfg.Sink = s
		}
	}
}

// WithStrict selects the all-or-nothing overflow policy for Assign and Append.
func WithStrict() Option {
	return func(cfg *Config) {
		cfg.Strict = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg Config) sink() diag.Sink {
	if cfg.Sink != nil {
		return cfg.Sink
	}
	return diag.Default()
}
