package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// PlanMissionsCommandHandler matches queued parcels to drones.
// The matching rules live in engine.Engine.PlanMissions; the handler only
// serialises the call and returns its counters.
//
// Example:
//
//	report, err := handler.Handle(ctx, NewPlanMissionsCommand())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report) // pending before, planned, still pending
type PlanMissionsCommandHandler struct {
	runner EngineRunner
}

// NewPlanMissionsCommandHandler creates the handler.
func NewPlanMissionsCommandHandler(runner EngineRunner) PlanMissionsCommandHandler {
	return PlanMissionsCommandHandler{runner: runner}
}

// Handle executes the command. The only errors are an unconstructed command and a
// cancelled context.
func (h PlanMissionsCommandHandler) Handle(ctx context.Context, command PlanMissionsCommand) (engine.PlanReport, error) {
	if err := command.Validate(); err != nil {
		return engine.PlanReport{}, err
	}

	var report engine.PlanReport
	err := h.runner.Run(ctx, func(e *engine.Engine) error {
		report = e.PlanMissions()
		return nil
	})
	if err != nil {
		return engine.PlanReport{}, err
	}

	return report, nil
}
