package engine

import (
	"context"
	"sync"
)

// Runner serialises access to one Engine so that the HTTP server, the scheduled
// jobs and the shell can share it.
type Runner struct {
	mu     sync.Mutex
	engine *Engine
}

// NewRunner wraps e. e must not be used directly afterwards.
func NewRunner(e *Engine) *Runner {
	return &Runner{engine: e}
}

// Run calls fn with exclusive access to the engine.
// It returns ctx.Err() without calling fn if ctx is already done.
func (r *Runner) Run(ctx context.Context, fn func(e *Engine) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(r.engine)
}
