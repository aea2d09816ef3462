package search

import (
	"github.com/lightningnetwork/lnd/clock"
)

const (
	// DefaultProgressInterval is the number of attempts between progress
	// events and cancellation checks.
	DefaultProgressInterval = 100

	// DefaultProgressBuffer is the capacity of a session's progress
	// channel.
	DefaultProgressBuffer = 16
)

type config struct {
	caseSensitive bool
	interval      uint64
	buffer        int
	clock         clock.Clock
	metrics       *Metrics
	onFinish      func(Outcome)
}

func defaultConfig() config {
	return config{
		interval: DefaultProgressInterval,
		buffer:   DefaultProgressBuffer,
		clock:    clock.NewDefaultClock(),
	}
}

// Option configures an Engine or Session.
type Option func(*config)

// WithCaseSensitive selects case-sensitive prefix matching. The default is
// case-insensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(c *config) {
		c.caseSensitive = caseSensitive
	}
}

// WithProgressInterval sets the number of attempts between progress events.
// Zero keeps the default.
func WithProgressInterval(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.interval = n
		}
	}
}

// WithProgressBuffer sets the capacity of a session's progress channel.
// Events that find the buffer full are dropped.
func WithProgressBuffer(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.buffer = n
		}
	}
}

// WithClock sets the time source used for elapsed time and ETA.
func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}

// WithMetrics reports attempts and outcomes to m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// withFinishHook calls fn on the search goroutine as soon as the engine
// stops, before the session closes its progress stream.
func withFinishHook(fn func(Outcome)) Option {
	return func(c *config) {
		c.onFinish = fn
	}
}
