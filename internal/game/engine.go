package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Engine computes deals, betting actions and partitions for one hand at a
// time. It keeps no per-hand state: every call takes a complete snapshot and
// returns a new one, so callers must serialize calls per hand.
type Engine struct {
	clock  quartz.Clock
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to timestamp action records.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine with a real clock and a silent logger unless
// overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
