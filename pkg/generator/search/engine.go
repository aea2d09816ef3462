package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// ErrAlreadyStarted is returned when Run is called on an engine that has
// already run.
var ErrAlreadyStarted = errors.New("search already started")

// Status is the state of a search. Found, Cancelled and Errored are
// terminal.
type Status int32

const (
	StatusIdle Status = iota
	StatusRunning
	StatusFound
	StatusCancelled
	StatusErrored
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusCancelled:
		return "cancelled"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s >= StatusFound
}

// Progress is a snapshot of a running search. It never carries key
// material.
type Progress struct {
	Attempts      uint64        // Addresses tried so far
	Elapsed       time.Duration // Time since the search started
	Rate          float64       // Attempts per second
	TimeRemaining string        // Rendered ETA, or Calculating
}

// Outcome is the terminal event of a search.
type Outcome struct {
	Status   Status
	Result   *Result // Set when Status is StatusFound
	Err      error   // Set when Status is StatusErrored
	Attempts uint64
}

// Engine runs the brute-force loop for one prefix. An Engine runs at most
// once.
type Engine struct {
	id         string
	sampler    generator.Sampler
	matcher    *Matcher
	prefix     string
	difficulty float64
	cfg        config

	status     atomic.Int32
	attempts   atomic.Uint64
	startNanos atomic.Int64
}

// NewEngine validates prefix and prepares a search. An empty prefix fails
// with generator.ErrInvalidInput.
func NewEngine(sampler generator.Sampler, prefix string,
	opts ...Option) (*Engine, error) {

	if prefix == "" {
		return nil, fmt.Errorf("%w: prefix must not be empty",
			generator.ErrInvalidInput)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		id:         uuid.NewString(),
		sampler:    sampler,
		matcher:    NewMatcher(prefix, cfg.caseSensitive),
		prefix:     prefix,
		difficulty: Difficulty(sampler.Encoding(), prefix, cfg.caseSensitive),
		cfg:        cfg,
	}, nil
}

// ID returns the unique identifier used in log lines.
func (e *Engine) ID() string {
	return e.id
}

// Difficulty returns the expected number of attempts for the prefix.
func (e *Engine) Difficulty() float64 {
	return e.difficulty
}

// Status returns the current state.
func (e *Engine) Status() Status {
	return Status(e.status.Load())
}

// Stats returns the current performance statistics. It is safe to call
// from any goroutine.
func (e *Engine) Stats() generator.Stats {
	startNanos := e.startNanos.Load()
	if startNanos == 0 {
		return generator.Stats{}
	}

	attempts := e.attempts.Load()
	elapsed := e.cfg.clock.Now().Sub(time.Unix(0, startNanos)).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Run searches until a match is found, ctx is cancelled, or the sampler
// fails. onProgress, if set, is called on the calling goroutine every
// progress interval. Cancellation is observed at each progress interval and
// before a match is published, so a cancel that precedes the match always
// wins.
func (e *Engine) Run(ctx context.Context, onProgress func(Progress)) (Outcome, error) {
	if !e.status.CompareAndSwap(int32(StatusIdle), int32(StatusRunning)) {
		return Outcome{}, ErrAlreadyStarted
	}

	network := e.sampler.Network()
	start := e.cfg.clock.Now()
	e.startNanos.Store(start.UnixNano())
	e.cfg.metrics.sessionStarted(network)

	log.Infof("Session %v: searching %v addresses for prefix %q "+
		"(case-sensitive=%v, difficulty 1 in %.4g)", e.id, network,
		e.prefix, e.cfg.caseSensitive, e.difficulty)

	var flushed uint64
	for {
		c, err := e.sampler.Sample()
		if err != nil {
			return e.finish(Outcome{
				Status: StatusErrored,
				Err:    fmt.Errorf("sample keypair: %w", err),
			}, &flushed), nil
		}

		if e.matcher.Matches(c.Address) {
			if ctx.Err() != nil {
				memguard.WipeBytes(c.Secret)
				return e.finish(Outcome{Status: StatusCancelled}, &flushed), nil
			}

			res := newResult(e.sampler, c, e.prefix,
				e.attempts.Load()+1, e.cfg.clock.Now())

			log.Infof("Session %v: found %v after %d attempts in %v",
				e.id, res.Address, res.Attempts, res.FoundAt.Sub(start))

			return e.finish(Outcome{Status: StatusFound, Result: res}, &flushed), nil
		}

		memguard.WipeBytes(c.Secret)
		attempts := e.attempts.Add(1)
		if attempts%e.cfg.interval != 0 {
			continue
		}

		elapsed := e.cfg.clock.Now().Sub(start)
		p := Progress{
			Attempts:      attempts,
			Elapsed:       elapsed,
			TimeRemaining: TimeRemaining(attempts, elapsed, e.difficulty),
		}
		if elapsed > 0 {
			p.Rate = float64(attempts) / elapsed.Seconds()
		}

		e.cfg.metrics.addAttempts(network, attempts-flushed)
		flushed = attempts

		if onProgress != nil {
			onProgress(p)
		}

		if ctx.Err() != nil {
			return e.finish(Outcome{Status: StatusCancelled}, &flushed), nil
		}
	}
}

// finish records the terminal state and reports it.
func (e *Engine) finish(o Outcome, flushed *uint64) Outcome {
	network := e.sampler.Network()
	o.Attempts = e.attempts.Load()

	e.status.Store(int32(o.Status))
	e.cfg.metrics.addAttempts(network, o.Attempts-*flushed)
	*flushed = o.Attempts
	e.cfg.metrics.sessionFinished(network, o.Status)

	switch o.Status {
	case StatusCancelled:
		log.Infof("Session %v: cancelled after %d attempts", e.id,
			o.Attempts)
	case StatusErrored:
		log.Errorf("Session %v: stopped after %d attempts: %v", e.id,
			o.Attempts, o.Err)
	}

	return o
}
