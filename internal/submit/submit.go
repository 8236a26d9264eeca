package submit

import (
	"errors"

	"github.com/lucasbaralm/fkit/logger"
)

var (
	ErrQueueFull = errors.New("task queue is full")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

// Func sends an element to a bounded task channel according to a full-queue strategy.
type Func[E any] func(taskChan chan<- E, e E) error

func GetFunction[E any](s FullQueueStrategy) Func[E] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[E]
	case ErrorWhenFull:
		return errorWhenFullStrategy[E]
	default:
		logger.Panicf("invalid submit strategy value %d", s)
	}
	return blockWhenFullStrategy[E]
}

func blockWhenFullStrategy[E any](taskChan chan<- E, e E) error {
	taskChan <- e
	return nil
}

func errorWhenFullStrategy[E any](taskChan chan<- E, e E) error {
	select {
	case taskChan <- e:
		return nil
	default:
		return ErrQueueFull
	}
}
