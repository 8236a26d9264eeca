// Package executors provides implementations of the Executor capability the
// futures package consumes: something that runs a unit of work concurrently.
// Goroutine spawns a goroutine per task, Sync runs tasks inline for
// deterministic tests, Pool bounds concurrency with a worker pool, and
// RateLimited throttles dispatch with a token bucket.
package executors

// Goroutine runs every task on its own goroutine.
type Goroutine struct{}

func (Goroutine) Submit(task func()) error {
	go task()
	return nil
}

// Sync runs every task inline on the submitting goroutine.  Submit does not
// return until the task has run, which makes asynchronous pipelines
// deterministic in tests.
type Sync struct{}

func (Sync) Submit(task func()) error {
	task()
	return nil
}
