package executors

import "github.com/lucasbaralm/fkit/internal/submit"

// FullQueueStrategy is the behavior that occurs when a task is submitted to an
// executor whose queue is full.
type FullQueueStrategy submit.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller when too many tasks have been submitted.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(submit.BlockWhenFull)
	// ErrorWhenFull immediately returns an error when too many tasks have been submitted.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(submit.ErrorWhenFull)
)

// PoolOpts is used to configure a Pool via the NewPool function.
type PoolOpts struct {
	// MaxWorkers is the number of goroutines running tasks.
	MaxWorkers int
	// MaxQueueDepth controls the number of outstanding tasks that can be submitted to the pool.
	MaxQueueDepth int
	// FullQueueStrategy determines the pool's behavior when MaxQueueDepth is exceeded.
	// By default the pool will block the caller.
	FullQueueStrategy FullQueueStrategy
}

func (o PoolOpts) validate() {
	if o.MaxWorkers < 1 {
		panic("pool max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("pool max queue depth must be 0 or greater")
	}
}
