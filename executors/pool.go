package executors

import (
	"sync"
	"sync/atomic"

	"github.com/lucasbaralm/fkit/internal/submit"
	"github.com/lucasbaralm/fkit/logger"
)

// Pool runs submitted tasks on a fixed number of worker goroutines with a
// bounded queue in front of them.
type Pool struct {
	isStopping uint32

	taskChan chan func()
	submit   submit.Func[func()]

	waitSend *sync.WaitGroup
	waitStop *sync.WaitGroup
	stopOnce *sync.Once
}

func NewPool(opts PoolOpts) *Pool {
	opts.validate()

	p := &Pool{
		taskChan: make(chan func(), opts.MaxQueueDepth),
		submit:   submit.GetFunction[func()](submit.FullQueueStrategy(opts.FullQueueStrategy)),
		waitSend: &sync.WaitGroup{},
		waitStop: &sync.WaitGroup{},
		stopOnce: &sync.Once{},
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		p.waitStop.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *Pool) worker(workerNum int) {
	defer p.waitStop.Done()

	logger.Debugf("pool worker %d started", workerNum)

	for task := range p.taskChan {
		task()
	}

	logger.Debugf("pool worker %d stopped", workerNum)
}

// Submit enqueues a task for execution by one of the pool's workers.  It
// returns ErrStopped after Stop has been called, and ErrQueueFull when the
// queue is full and the pool was configured with ErrorWhenFull.
func (p *Pool) Submit(task func()) error {
	p.waitSend.Add(1)
	defer p.waitSend.Done()

	if atomic.LoadUint32(&p.isStopping) == 1 {
		return ErrStopped
	}

	return p.submit(p.taskChan, task)
}

// Stop prevents new submissions, waits for in-flight submissions to land,
// then drains the queue and waits for all workers to exit.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		atomic.StoreUint32(&p.isStopping, 1)
		p.waitSend.Wait()
		close(p.taskChan)
	})

	p.waitStop.Wait()
}
