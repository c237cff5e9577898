package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

type blockingJob struct {
	name    string
	started chan struct{}
	stopped chan struct{}
}

func (j *blockingJob) Name() string {
	return j.name
}

func (j *blockingJob) Interval() time.Duration {
	return time.Millisecond
}

func (j *blockingJob) Run(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	close(j.stopped)
	return ctx.Err()
}

func newBlockingJob(name string) *blockingJob {
	return &blockingJob{
		name:    name,
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobManagerStartsAndStopsJobs(t *testing.T) {
	jm := NewJobManager(testLogger())

	job := newBlockingJob("test_job")
	jm.Register(job)

	jm.Start(context.Background())

	select {
	case <-job.started:
	case <-time.After(time.Second):
		t.Fatal("job never started")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	jm.Shutdown(shutdownCtx)

	select {
	case <-job.stopped:
	case <-time.After(time.Second):
		t.Fatal("job never stopped")
	}
}

func TestJobManagerStartIsIdempotent(t *testing.T) {
	jm := NewJobManager(testLogger())

	job := newBlockingJob("test_job")
	jm.Register(job)

	jm.Start(context.Background())
	// A second Start must not spawn a duplicate runner, closing the started
	// channel twice would panic.
	jm.Start(context.Background())

	select {
	case <-job.started:
	case <-time.After(time.Second):
		t.Fatal("job never started")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	jm.Shutdown(shutdownCtx)
}
