package planner

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/prodgraph/partition"
)

// Job is the single-fire completion handle of a background run.
type Job struct {
	id   string
	done chan struct{}
	res  *partition.Result
	err  error
}

// Start runs req on a new goroutine and returns its Job immediately.
// Panics inside the run surface as ErrFatal through the Job.
func (p *Planner) Start(ctx context.Context, req Request) *Job {
	j := &Job{id: uuid.NewString(), done: make(chan struct{})}
	go func() {
		defer close(j.done)
		j.res, j.err = p.execute(ctx, j.id, req)
	}()

	return j
}

// ID returns the run id shared with log entries.
func (j *Job) ID() string { return j.id }

// Done is closed exactly once, when the run completes.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the run completes or ctx ends. Ending ctx abandons the
// wait, not the run.
func (j *Job) Wait(ctx context.Context) (*partition.Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the outcome without blocking; ErrPending before completion.
func (j *Job) Result() (*partition.Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	default:
		return nil, ErrPending
	}
}
