// Package worker runs fire-and-forget background jobs with bounded
// retries. Nothing a job does is allowed to reach a user-facing request
// path, failures are logged and eventually dropped.
package worker

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Pool runs submitted jobs in their own goroutines.
type Pool struct {
	maxRetries int
	backoff    time.Duration
	wg         sync.WaitGroup
}

// New returns a pool that retries failing jobs up to maxRetries times.
// The wait before retry n is n times the backoff.
func New(maxRetries int, backoff time.Duration) *Pool {
	return &Pool{
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Submit schedules a job. It returns immediately, the job runs in the
// background. Jobs must be idempotent since they run again on failure.
// A job that still fails after all retries is dropped, no delivery
// guarantee is made.
func (p *Pool) Submit(name string, job func() error) {
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		var err error
		for attempt := 1; attempt <= p.maxRetries; attempt++ {
			err = job()
			if err == nil {
				return
			}

			log.Debug().Str("job", name).Int("attempt", attempt).Err(err).Msg("background job failed")

			if attempt < p.maxRetries {
				time.Sleep(time.Duration(attempt) * p.backoff)
			}
		}

		log.Warn().Str("job", name).Int("attempts", p.maxRetries).Err(err).Msg("background job dropped")
	}()
}

// Wait blocks until all submitted jobs have finished. It is used on
// shutdown and in tests.
func (p *Pool) Wait() {
	p.wg.Wait()
}
