// Package commands contains business operations that modify the dispatch engine state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, then one
// serialised engine call per handler.
package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// EngineRunner gives a handler exclusive access to the dispatch engine for the
// duration of fn. *engine.Runner implements it.
//
// Example:
//
//	err := runner.Run(ctx, func(e *engine.Engine) error {
//	    report = e.PlanMissions()
//	    return nil
//	})
type EngineRunner interface {
	Run(ctx context.Context, fn func(e *engine.Engine) error) error
}
