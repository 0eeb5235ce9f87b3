package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrPlanMissionsCommandIsNotConstructed = errors.New(
	"PlanMissionsCommand must be created via NewPlanMissionsCommand constructor",
)

// PlanMissionsCommand plans missions for the queued parcels, front first, until
// the queue is empty or a parcel finds no drone.
type PlanMissionsCommand struct {
	guard guard.ConstructorGuard
}

// NewPlanMissionsCommand creates the command.
func NewPlanMissionsCommand() PlanMissionsCommand {
	return PlanMissionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanMissionsCommandIsNotConstructed if validation fails.
func (c PlanMissionsCommand) Validate() error {
	return c.guard.Validate(ErrPlanMissionsCommandIsNotConstructed)
}
