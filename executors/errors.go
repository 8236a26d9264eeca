package executors

import (
	"errors"

	"github.com/lucasbaralm/fkit/internal/submit"
)

var (
	ErrQueueFull = submit.ErrQueueFull
	ErrStopped   = errors.New("executor has been stopped")
)
