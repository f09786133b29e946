// Package parallel runs independent jobs on a bounded number of workers.
package parallel

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the pool size used when WithWorkers is not given.
const DefaultWorkers = 2

// Order selects how Run arranges its results.
type Order int

const (
	// CompletionOrder returns results as jobs finish.
	CompletionOrder Order = iota
	// SubmissionOrder returns results in the order of the jobs.
	SubmissionOrder
)

type Option func(*config)

type config struct {
	workers int
	order   Order
}

// WithWorkers sets the number of jobs running at once. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithOrder(o Order) Option {
	return func(c *config) {
		c.order = o
	}
}

// Result is the outcome of the job at Index.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Run calls fn for every job, at most the configured number at a time, and
// returns one Result per job. A failing job does not stop the others. Jobs
// not yet started when ctx is done report ctx.Err().
func Run[J, R any](ctx context.Context, jobs []J, fn func(context.Context, J) (R, error), opts ...Option) []Result[R] {
	c := config{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&c)
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		results = make([]Result[R], 0, len(jobs))
	)
	g.SetLimit(c.workers)
	for i, job := range jobs {
		g.Go(func() error {
			res := Result[R]{Index: i}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res.Value, res.Err = fn(ctx, job)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if c.order == SubmissionOrder {
		slices.SortFunc(results, func(a, b Result[R]) int {
			return cmp.Compare(a.Index, b.Index)
		})
	}
	return results
}
