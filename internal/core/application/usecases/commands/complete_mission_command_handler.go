package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// CompleteMissionCommandHandler runs CompleteMissionCommand against the engine.
type CompleteMissionCommandHandler struct {
	runner EngineRunner
}

// NewCompleteMissionCommandHandler creates the handler.
func NewCompleteMissionCommandHandler(runner EngineRunner) CompleteMissionCommandHandler {
	return CompleteMissionCommandHandler{runner: runner}
}

// Handle executes the command. outcome.Applied is false when no mission was in
// progress, which is not an error.
func (h CompleteMissionCommandHandler) Handle(ctx context.Context, command CompleteMissionCommand) (engine.Outcome, error) {
	if err := command.Validate(); err != nil {
		return engine.Outcome{}, err
	}

	var outcome engine.Outcome
	err := h.runner.Run(ctx, func(e *engine.Engine) error {
		outcome = e.CompleteCurrentMission()
		return nil
	})
	if err != nil {
		return engine.Outcome{}, err
	}

	return outcome, nil
}
