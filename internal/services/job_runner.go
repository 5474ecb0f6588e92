package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusComplete  JobStatus = "complete"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrRunnerClosed = errors.New("job runner closed")
)

// Job is a snapshot of one simulated generation call.
type Job struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Status     JobStatus  `json:"status"`
	Result     string     `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`

	key string
}

// Producer computes a job result once its delay has elapsed.
type Producer func(ctx context.Context) (string, error)

type jobEntry struct {
	job    Job
	cancel context.CancelFunc
}

// JobRunner completes each job after a fixed delay. A trigger key has at
// most one pending job; triggering it again while pending returns that job
// and starts nothing. Cancelled jobs never take a late result.
type JobRunner struct {
	mu        sync.Mutex
	jobs      map[string]*jobEntry
	active    map[string]string
	retention time.Duration
	closed    bool
	wg        sync.WaitGroup
	log       *zap.Logger
}

func NewJobRunner(retention time.Duration, log *zap.Logger) *JobRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobRunner{
		jobs:      make(map[string]*jobEntry),
		active:    make(map[string]string),
		retention: retention,
		log:       log,
	}
}

// Trigger starts a job for key unless one is already pending. started is
// false when the existing pending job is returned instead.
func (r *JobRunner) Trigger(key, kind string, delay time.Duration, produce Producer) (job Job, started bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Job{}, false, ErrRunnerClosed
	}
	r.pruneLocked(time.Now())

	if id, ok := r.active[key]; ok {
		if e, ok := r.jobs[id]; ok && e.job.Status == JobStatusPending {
			r.log.Debug("Trigger ignored, job pending", zap.String("key", key), zap.String("job_id", id))
			return e.job, false, nil
		}
		delete(r.active, key)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &jobEntry{
		job: Job{
			ID:        uuid.New().String(),
			Kind:      kind,
			Status:    JobStatusPending,
			CreatedAt: time.Now(),
			key:       key,
		},
		cancel: cancel,
	}
	r.jobs[e.job.ID] = e
	r.active[key] = e.job.ID

	r.wg.Add(1)
	go r.run(ctx, e.job.ID, delay, produce)

	r.log.Info("Job started", zap.String("job_id", e.job.ID), zap.String("kind", kind), zap.Duration("delay", delay))
	return e.job, true, nil
}

func (r *JobRunner) run(ctx context.Context, id string, delay time.Duration, produce Producer) {
	defer r.wg.Done()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	result, err := safeProduce(ctx, produce)
	r.finish(id, result, err)
}

func safeProduce(ctx context.Context, produce Producer) (result string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("producer panicked: %v", p)
		}
	}()
	return produce(ctx)
}

func (r *JobRunner) finish(id, result string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.jobs[id]
	if !ok || e.job.Status != JobStatusPending {
		r.log.Debug("Discarding late job result", zap.String("job_id", id))
		return
	}

	now := time.Now()
	e.job.FinishedAt = &now
	if err != nil {
		e.job.Status = JobStatusFailed
		e.job.Error = err.Error()
		r.log.Warn("Job failed", zap.String("job_id", id), zap.Error(err))
	} else {
		e.job.Status = JobStatusComplete
		e.job.Result = result
		r.log.Info("Job completed", zap.String("job_id", id), zap.String("kind", e.job.Kind))
	}
	r.releaseLocked(e)
}

// Get returns a snapshot of the job.
func (r *JobRunner) Get(id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return e.job, nil
}

// Cancel stops a pending job. Finished jobs are returned unchanged.
func (r *JobRunner) Cancel(id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	if e.job.Status == JobStatusPending {
		r.cancelLocked(e)
		r.log.Info("Job cancelled", zap.String("job_id", id))
	}
	return e.job, nil
}

// Close cancels every pending job and waits for their goroutines.
func (r *JobRunner) Close() {
	r.mu.Lock()
	r.closed = true
	for _, e := range r.jobs {
		if e.job.Status == JobStatusPending {
			r.cancelLocked(e)
		}
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *JobRunner) cancelLocked(e *jobEntry) {
	now := time.Now()
	e.job.Status = JobStatusCancelled
	e.job.FinishedAt = &now
	r.releaseLocked(e)
}

func (r *JobRunner) releaseLocked(e *jobEntry) {
	if r.active[e.job.key] == e.job.ID {
		delete(r.active, e.job.key)
	}
	e.cancel()
}

// pruneLocked forgets finished jobs older than the retention window.
func (r *JobRunner) pruneLocked(now time.Time) {
	if r.retention <= 0 {
		return
	}
	for id, e := range r.jobs {
		if e.job.FinishedAt != nil && now.Sub(*e.job.FinishedAt) > r.retention {
			delete(r.jobs, id)
		}
	}
}
