package task

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
)

// Task is one unit of work submitted to a Pool: one seed, one builder
// invocation, one output file. Run receives an RNG seeded exclusively
// from this Task's own Seed, matching spec section 5's "each task has
// its own RNG seeded from its parameters" concurrency contract - no
// state is shared between tasks.
type Task struct {
	ID   string
	Seed int64
	Run  func(ctx context.Context, rng *rand.Rand) (any, error)
}

// Result pairs a Task with the outcome of running it.
type Result struct {
	Task  Task
	Value any
	Err   error
}

// Pool runs Tasks across a bounded number of worker goroutines.
type Pool struct {
	Workers int
}

// NewPool returns a Pool sized to the host's processor count, per spec
// section 5 ("worker pool sized to the host's processor count"). Pass a
// positive workers value to override it (chiefly for deterministic
// tests).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{Workers: workers}
}

// Run executes every task and returns one Result per task, in the same
// order tasks were given. A cancelled ctx stops dispatching new tasks;
// tasks already in flight run to completion, and any task never started
// is reported with ctx.Err() as its error. Run itself never returns an
// error; per-task failures live in each Result.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				t := tasks[i]
				rng := rand.New(rand.NewSource(t.Seed))
				v, err := t.Run(ctx, rng)
				results[i] = Result{Task: t, Value: v, Err: err}
			}
		}()
	}

	dispatched := 0
dispatch:
	for ; dispatched < len(tasks); dispatched++ {
		if ctx.Err() != nil {
			break dispatch
		}
		select {
		case indices <- dispatched:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(indices)
	wg.Wait()

	for i := dispatched; i < len(tasks); i++ {
		results[i] = Result{Task: tasks[i], Err: ctx.Err()}
	}
	return results
}
