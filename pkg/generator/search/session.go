package search

import (
	"context"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Session is the handle of one search running on its own goroutine.
//
// Progress events arrive on Progress() in attempt order. The channel is
// closed before the single terminal Outcome is published, so ranging over
// Progress() and then calling Outcome() observes every delivered event in
// order followed by the terminal one.
type Session struct {
	engine   *Engine
	cancel   context.CancelFunc
	progress chan Progress
	done     chan struct{}
	outcome  Outcome
}

// Start validates prefix and launches the search. An empty prefix fails
// with generator.ErrInvalidInput and no goroutine is started. Cancelling
// ctx is equivalent to calling Cancel.
func Start(ctx context.Context, sampler generator.Sampler, prefix string,
	opts ...Option) (*Session, error) {

	engine, err := NewEngine(sampler, prefix, opts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		engine:   engine,
		cancel:   cancel,
		progress: make(chan Progress, engine.cfg.buffer),
		done:     make(chan struct{}),
	}

	go s.run(ctx)

	return s, nil
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer s.cancel()

	outcome, err := s.engine.Run(ctx, s.publish)
	if err != nil {
		outcome = Outcome{Status: StatusErrored, Err: err}
	}

	if hook := s.engine.cfg.onFinish; hook != nil {
		hook(outcome)
	}

	close(s.progress)
	s.outcome = outcome
}

// publish hands p to the consumer without ever blocking the search. A
// consumer that falls behind misses events; the next one it receives
// carries a higher attempt count.
func (s *Session) publish(p Progress) {
	select {
	case s.progress <- p:
	default:
		log.Tracef("Session %v: progress consumer behind, dropped "+
			"event at %d attempts", s.engine.ID(), p.Attempts)
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.engine.ID()
}

// Difficulty returns the expected number of attempts for the prefix.
func (s *Session) Difficulty() float64 {
	return s.engine.Difficulty()
}

// Stats returns the current performance statistics.
func (s *Session) Stats() generator.Stats {
	return s.engine.Stats()
}

// Progress returns the progress stream. It is closed when the search ends.
func (s *Session) Progress() <-chan Progress {
	return s.progress
}

// Done is closed once the outcome is available.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Outcome blocks until the search ends and returns its terminal event.
func (s *Session) Outcome() Outcome {
	<-s.done
	return s.outcome
}

// Wait is like Outcome but gives up when ctx is done.
func (s *Session) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-s.done:
		return s.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Cancel requests the search to stop. The loop observes the request within
// one progress interval. Cancel is idempotent and has no effect once the
// search has ended.
func (s *Session) Cancel() {
	s.cancel()
}
