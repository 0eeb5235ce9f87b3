package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// PopNotificationCommandHandler pops notifications newest first.
type PopNotificationCommandHandler struct {
	runner EngineRunner
}

// NewPopNotificationCommandHandler creates the handler.
func NewPopNotificationCommandHandler(runner EngineRunner) PopNotificationCommandHandler {
	return PopNotificationCommandHandler{runner: runner}
}

// Handle pops one notification.
func (h PopNotificationCommandHandler) Handle(
	ctx context.Context,
	command PopNotificationCommand,
) (PopNotificationResult, error) {
	if err := command.Validate(); err != nil {
		return PopNotificationResult{}, err
	}

	var result PopNotificationResult
	err := h.runner.Run(ctx, func(e *engine.Engine) error {
		result.Message, result.Found = e.PopNotification()
		return nil
	})
	if err != nil {
		return PopNotificationResult{}, err
	}

	return result, nil
}
