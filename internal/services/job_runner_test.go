package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitForStatus(t *testing.T, r *JobRunner, id string, want JobStatus) Job {
	t.Helper()
	var job Job
	require.Eventually(t, func() bool {
		var err error
		job, err = r.Get(id)
		return err == nil && job.Status == want
	}, time.Second, 5*time.Millisecond)
	return job
}

func TestJobRunnerCompletesAfterDelay(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	job, started, err := r.Trigger("s1:enhance", JobKindEnhance, 20*time.Millisecond, func(context.Context) (string, error) {
		return "done", nil
	})
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, JobStatusPending, job.Status)

	done := waitForStatus(t, r, job.ID, JobStatusComplete)
	assert.Equal(t, "done", done.Result)
	assert.NotNil(t, done.FinishedAt)
}

func TestJobRunnerDropsReentrantTrigger(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	var calls int32
	produce := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "ok", nil
	}

	first, started, err := r.Trigger("s1:diagram", JobKindDiagram, 30*time.Millisecond, produce)
	require.NoError(t, err)
	require.True(t, started)
	second, started, err := r.Trigger("s1:diagram", JobKindDiagram, 30*time.Millisecond, produce)
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, first.ID, second.ID)

	waitForStatus(t, r, first.ID, JobStatusComplete)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// A new trigger after completion starts a fresh job
	third, started, err := r.Trigger("s1:diagram", JobKindDiagram, time.Millisecond, produce)
	require.NoError(t, err)
	assert.True(t, started)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestJobRunnerKeysAreIndependent(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	produce := func(context.Context) (string, error) { return "ok", nil }
	a, startedA, err := r.Trigger("s1:enhance", JobKindEnhance, 10*time.Millisecond, produce)
	require.NoError(t, err)
	b, startedB, err := r.Trigger("s2:enhance", JobKindEnhance, 10*time.Millisecond, produce)
	require.NoError(t, err)
	assert.True(t, startedA)
	assert.True(t, startedB)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJobRunnerCancelDiscardsLateResult(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	release := make(chan struct{})
	job, _, err := r.Trigger("s1:enhance", JobKindEnhance, time.Millisecond, func(context.Context) (string, error) {
		<-release
		return "late", nil
	})
	require.NoError(t, err)

	// Let the producer start, then cancel while it is still running
	time.Sleep(20 * time.Millisecond)
	cancelled, err := r.Cancel(job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusCancelled, cancelled.Status)
	close(release)

	time.Sleep(20 * time.Millisecond)
	got, err := r.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusCancelled, got.Status)
	assert.Empty(t, got.Result)
}

func TestJobRunnerCancelBeforeDelay(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	var calls int32
	job, _, err := r.Trigger("s1:diagram", JobKindDiagram, time.Hour, func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "never", nil
	})
	require.NoError(t, err)

	_, err = r.Cancel(job.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	// The key is free again
	_, started, err := r.Trigger("s1:diagram", JobKindDiagram, time.Hour, func(context.Context) (string, error) { return "", nil })
	require.NoError(t, err)
	assert.True(t, started)
}

func TestJobRunnerFailure(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	job, _, err := r.Trigger("k", JobKindEnhance, time.Millisecond, func(context.Context) (string, error) {
		return "", errors.New("boom")
	})
	require.NoError(t, err)
	failed := waitForStatus(t, r, job.ID, JobStatusFailed)
	assert.Equal(t, "boom", failed.Error)

	job, _, err = r.Trigger("k", JobKindEnhance, time.Millisecond, func(context.Context) (string, error) {
		panic("bad producer")
	})
	require.NoError(t, err)
	failed = waitForStatus(t, r, job.ID, JobStatusFailed)
	assert.Contains(t, failed.Error, "bad producer")
}

func TestJobRunnerUnknownJob(t *testing.T) {
	r := NewJobRunner(time.Minute, nil)
	defer r.Close()

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = r.Cancel("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRunnerClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	r := NewJobRunner(time.Minute, nil)

	job, _, err := r.Trigger("k", JobKindDiagram, time.Hour, func(context.Context) (string, error) { return "x", nil })
	require.NoError(t, err)

	r.Close()
	got, err := r.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusCancelled, got.Status)

	_, _, err = r.Trigger("k", JobKindDiagram, time.Millisecond, func(context.Context) (string, error) { return "x", nil })
	assert.ErrorIs(t, err, ErrRunnerClosed)
}

func TestJobRunnerPrunesFinishedJobs(t *testing.T) {
	r := NewJobRunner(10*time.Millisecond, nil)
	defer r.Close()

	job, _, err := r.Trigger("a", JobKindEnhance, time.Millisecond, func(context.Context) (string, error) { return "x", nil })
	require.NoError(t, err)
	waitForStatus(t, r, job.ID, JobStatusComplete)

	time.Sleep(30 * time.Millisecond)
	_, _, err = r.Trigger("b", JobKindEnhance, time.Hour, func(context.Context) (string, error) { return "y", nil })
	require.NoError(t, err)

	_, err = r.Get(job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
