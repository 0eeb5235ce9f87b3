package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// LaunchMissionCommandHandler runs LaunchMissionCommand against the engine.
type LaunchMissionCommandHandler struct {
	runner EngineRunner
}

// NewLaunchMissionCommandHandler creates the handler.
func NewLaunchMissionCommandHandler(runner EngineRunner) LaunchMissionCommandHandler {
	return LaunchMissionCommandHandler{runner: runner}
}

// Handle executes the command. The only errors are an unconstructed command and a
// cancelled context.
func (h LaunchMissionCommandHandler) Handle(ctx context.Context, command LaunchMissionCommand) (engine.Outcome, error) {
	if err := command.Validate(); err != nil {
		return engine.Outcome{}, err
	}

	var outcome engine.Outcome
	err := h.runner.Run(ctx, func(e *engine.Engine) error {
		outcome = e.LaunchNextMission()
		return nil
	})
	if err != nil {
		return engine.Outcome{}, err
	}

	return outcome, nil
}
