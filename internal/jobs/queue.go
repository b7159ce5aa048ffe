package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of detached work. It never reports back to whoever
// submitted it.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Submitter is the side of the queue that request paths see.
type Submitter interface {
	Submit(job Job) bool
}

// FailureHook observes jobs that failed, panicked or were dropped.
type FailureHook func(name string, err error)

var (
	ErrQueueFull   = errors.New("jobs: queue full")
	ErrQueueClosed = errors.New("jobs: queue closed")
)

type Options struct {
	Size      int
	Workers   int
	Timeout   time.Duration
	OnFailure FailureHook
}

type Queue struct {
	log     *zap.Logger
	jobs    chan Job
	timeout time.Duration
	onFail  FailureHook

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewQueue(log *zap.Logger, opts Options) *Queue {
	if opts.Size <= 0 {
		opts.Size = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	q := &Queue{
		log:     log,
		jobs:    make(chan Job, opts.Size),
		timeout: opts.Timeout,
		onFail:  opts.OnFailure,
	}

	q.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go q.worker()
	}
	return q
}

// Submit enqueues job without blocking. A full or closed queue drops it.
func (q *Queue) Submit(job Job) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.fail(job.Name, ErrQueueClosed)
		return false
	}

	select {
	case q.jobs <- job:
		return true
	default:
		q.log.Warn("job queue full, dropping job", zap.String("job", job.Name))
		q.fail(job.Name, ErrQueueFull)
		return false
	}
}

// Close stops accepting jobs and waits for queued ones to finish or for
// ctx to end.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		if err := q.run(job); err != nil {
			q.log.Error("background job failed", zap.String("job", job.Name), zap.Error(err))
			q.fail(job.Name, err)
		}
	}
}

func (q *Queue) run(job Job) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return job.Run(ctx)
}

func (q *Queue) fail(name string, err error) {
	if q.onFail != nil {
		q.onFail(name, err)
	}
}
