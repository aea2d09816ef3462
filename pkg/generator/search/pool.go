package search

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/clock"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Pool spreads one search over several sessions sharing a sampler and
// reports the first match. It exposes the same handle as a Session:
// ordered progress with the combined attempt count, then exactly one
// terminal Outcome.
type Pool struct {
	id       string
	sessions []*Session
	cancel   context.CancelFunc
	clock    clock.Clock
	start    time.Time

	// reported holds the attempt count of the latest progress event
	// delivered by each worker.
	mu       sync.Mutex
	reported []uint64
	progress chan Progress

	done    chan struct{}
	outcome Outcome
}

// StartPool launches workers sessions for prefix. If workers is 0 or less,
// it defaults to the number of CPU cores. The sampler must be safe for
// concurrent use.
func StartPool(ctx context.Context, sampler generator.Sampler, prefix string,
	workers int, opts ...Option) (*Pool, error) {

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		id:       uuid.NewString(),
		cancel:   cancel,
		clock:    cfg.clock,
		start:    cfg.clock.Now(),
		reported: make([]uint64, workers),
		progress: make(chan Progress, cfg.buffer),
		done:     make(chan struct{}),
	}

	opts = append(opts[:len(opts):len(opts)], withFinishHook(p.workerFinished))
	for i := 0; i < workers; i++ {
		s, err := Start(ctx, sampler, prefix, opts...)
		if err != nil {
			cancel()
			return nil, err
		}
		p.sessions = append(p.sessions, s)
	}

	log.Debugf("Pool %v: started %d workers for prefix %q", p.id,
		workers, prefix)

	go p.run()

	return p, nil
}

func (p *Pool) run() {
	defer close(p.done)
	defer p.cancel()

	var wg sync.WaitGroup
	for i, s := range p.sessions {
		wg.Add(1)
		go func(i int, s *Session) {
			defer wg.Done()

			for event := range s.Progress() {
				p.publish(i, event.Attempts)
			}
		}(i, s)
	}
	wg.Wait()

	close(p.progress)
	p.outcome = p.merge()
}

// workerFinished runs on a worker's goroutine the moment its engine stops.
// A match or a failure ends the whole search.
func (p *Pool) workerFinished(o Outcome) {
	switch o.Status {
	case StatusFound, StatusErrored:
		p.cancel()
	}
}

// merge folds the worker outcomes into one. The first worker that found a
// match wins; results found by others in the same instant are destroyed.
func (p *Pool) merge() Outcome {
	merged := Outcome{Status: StatusCancelled}
	for _, s := range p.sessions {
		o := s.Outcome()
		merged.Attempts += o.Attempts

		switch {
		case o.Status == StatusFound && merged.Status != StatusFound:
			merged.Status = StatusFound
			merged.Result = o.Result
			merged.Err = nil

		case o.Status == StatusFound:
			o.Result.Destroy()

		case o.Status == StatusErrored && merged.Status == StatusCancelled:
			merged.Status = StatusErrored
			merged.Err = o.Err
		}
	}

	if merged.Result != nil {
		merged.Result.Attempts = merged.Attempts + 1
	}

	log.Debugf("Pool %v: %v after %d attempts", p.id, merged.Status,
		merged.Attempts)

	return merged
}

// publish records the count reported by worker i and sends the combined
// progress without blocking the workers. Every worker reports at multiples
// of the progress interval, so the sum is one too, and since each count
// only grows the combined events strictly increase.
func (p *Pool) publish(i int, attempts uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reported[i] = attempts

	var total uint64
	for _, n := range p.reported {
		total += n
	}

	elapsed := p.clock.Now().Sub(p.start)
	event := Progress{
		Attempts:      total,
		Elapsed:       elapsed,
		TimeRemaining: TimeRemaining(total, elapsed, p.Difficulty()),
	}
	if elapsed > 0 {
		event.Rate = float64(total) / elapsed.Seconds()
	}

	select {
	case p.progress <- event:
	default:
		log.Tracef("Pool %v: progress consumer behind, dropped event "+
			"at %d attempts", p.id, event.Attempts)
	}
}

// ID returns the pool identifier.
func (p *Pool) ID() string {
	return p.id
}

// Workers returns the number of sessions in the pool.
func (p *Pool) Workers() int {
	return len(p.sessions)
}

// Difficulty returns the expected number of attempts for the prefix.
func (p *Pool) Difficulty() float64 {
	return p.sessions[0].Difficulty()
}

// Stats returns the combined statistics of all workers.
func (p *Pool) Stats() generator.Stats {
	var attempts uint64
	for _, s := range p.sessions {
		attempts += s.Stats().Attempts
	}

	elapsed := p.clock.Now().Sub(p.start).Seconds()

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

// Progress returns the combined progress stream. It is closed when every
// worker has stopped.
func (p *Pool) Progress() <-chan Progress {
	return p.progress
}

// Done is closed once the outcome is available.
func (p *Pool) Done() <-chan struct{} {
	return p.done
}

// Outcome blocks until every worker has stopped and returns the terminal
// event.
func (p *Pool) Outcome() Outcome {
	<-p.done
	return p.outcome
}

// Wait is like Outcome but gives up when ctx is done.
func (p *Pool) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-p.done:
		return p.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Cancel stops every worker. It is idempotent.
func (p *Pool) Cancel() {
	p.cancel()
}
