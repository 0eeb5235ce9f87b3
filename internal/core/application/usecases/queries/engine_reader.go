// Package queries contains read operations for retrieving dispatch state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models detached from the engine, safe to hand to any adapter.
package queries

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// EngineReader gives a handler exclusive access to the engine while it builds its
// read model. *engine.Runner implements it.
type EngineReader interface {
	Run(ctx context.Context, fn func(e *engine.Engine) error) error
}
