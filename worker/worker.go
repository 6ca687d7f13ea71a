package worker

import (
	"errors"
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/hopsim/oerror"
)

// Pool runs CPU intensive jobs on a fixed number of goroutines. Panics in jobs are reported to
// sentry and do not take down the worker.
type Pool struct {
	queue chan func()
	once  sync.Once
}

// NewPool starts a pool of n workers. A non-positive n starts one worker per CPU.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for f := range p.queue {
		f()
	}
}

// Submit queues f to be run by a worker. It blocks while the queue is full.
func (p *Pool) Submit(f func()) {
	p.queue <- func() {
		defer sentry.Recover()
		f()
	}
}

// RunAll runs every job and waits for all of them to finish. The error returned holds a message
// for every job that panicked.
func (p *Pool) RunAll(jobs []func()) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	wg.Add(len(jobs))
	for i, job := range jobs {
		p.queue <- func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					sentry.CurrentHub().Recover(r)
					mu.Lock()
					errs = append(errs, oerror.New("job %d panicked: %v", i, r))
					mu.Unlock()
				}
			}()
			job()
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Close stops the workers once the queued jobs are done. Submitting to a closed pool panics.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
}
