package dispatch

import (
	"github.com/parallax-hpc/parallax/internal/hostcaps"
)

// Config controls how the parallel execution spaces split work.
type Config struct {
	Workers  int // worker goroutines for Threads and Pool spaces
	MinChunk int // below this many indices, parallel spaces run inline
}

// DefaultConfig returns defaults based on the detected core count and the
// host's vector width.
func DefaultConfig() Config {
	caps := hostcaps.Detect()
	return Config{
		Workers:  caps.LogicalCores,
		MinChunk: caps.ChunkHint(),
	}.normalize()
}

// normalize clamps nonsensical values back to usable ones.
func (c Config) normalize() Config {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.MinChunk < 1 {
		c.MinChunk = 1
	}
	return c
}

// Option adjusts a single dispatch call.
type Option func(*settings)

type settings struct {
	cfg   Config
	label string
}

// WithConfig overrides the worker configuration for this call.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithLabel attaches a diagnostic label, surfaced in error messages.
func WithLabel(label string) Option {
	return func(s *settings) { s.label = label }
}

func applyOptions(opts []Option) settings {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	s.cfg = s.cfg.normalize()
	return s
}
