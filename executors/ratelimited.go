package executors

import (
	"context"
	"time"

	"github.com/lucasbaralm/fkit/internal/submit"
	"github.com/lucasbaralm/fkit/logger"
	"golang.org/x/time/rate"
)

// A rate limit expressed as N tasks per second
type Limit = rate.Limit

// Every converts the provided duration into a number of tasks per second,
// for instance Every(100 * time.Millisecond) will yield 10 tasks per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// RateLimitedOpts is used to configure a RateLimited executor via the NewRateLimited function.
type RateLimitedOpts struct {
	// Limit is the dispatch rate expressed in tasks per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// MaxQueueDepth controls the number of outstanding tasks that can be submitted to the executor.
	MaxQueueDepth int
	// FullQueueStrategy determines the executor's behavior when MaxQueueDepth is exceeded.
	// By default the executor will block the caller.
	FullQueueStrategy FullQueueStrategy
}

func (o RateLimitedOpts) validate() {
	if o.Limit < 0 {
		panic("rate limited executor limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("rate limited executor burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("rate limited executor max queue depth must be 0 or greater")
	}
}

// RateLimited dispatches submitted tasks at a bounded rate.  Tasks wait in a
// queue until the token bucket admits them, then each runs on its own
// goroutine.
type RateLimited struct {
	limiter  *rate.Limiter
	taskChan chan func()
	submit   submit.Func[func()]
}

func NewRateLimited(opts RateLimitedOpts) *RateLimited {
	opts.validate()

	rl := &RateLimited{
		limiter:  rate.NewLimiter(rate.Limit(opts.Limit), opts.Burst),
		taskChan: make(chan func(), opts.MaxQueueDepth),
		submit:   submit.GetFunction[func()](submit.FullQueueStrategy(opts.FullQueueStrategy)),
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimited) startWorker() {
	go func() {
		for task := range rl.taskChan {
			if err := rl.limiter.Wait(context.Background()); err != nil {
				logger.Errorf("rate limiter wait failed: %v", err)
				continue
			}

			go task()
		}
	}()
}

// Submit enqueues a task to be dispatched when the rate limit allows.
func (rl *RateLimited) Submit(task func()) error {
	return rl.submit(rl.taskChan, task)
}

// WARNING If this is called twice or Submit is called after calling Close it will panic
func (rl *RateLimited) Close() {
	close(rl.taskChan)
}
