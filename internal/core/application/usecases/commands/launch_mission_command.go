package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrLaunchMissionCommandIsNotConstructed = errors.New(
	"LaunchMissionCommand must be created via NewLaunchMissionCommand constructor",
)

// LaunchMissionCommand launches the first planned mission.
// Exactly one mission is advanced per command.
//
// Example:
//
//	outcome, err := handler.Handle(ctx, NewLaunchMissionCommand())
//	if err == nil && !outcome.Applied {
//	    log.Println(outcome.Message) // nothing planned yet
//	}
type LaunchMissionCommand struct {
	guard guard.ConstructorGuard
}

// NewLaunchMissionCommand creates the command.
func NewLaunchMissionCommand() LaunchMissionCommand {
	return LaunchMissionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrLaunchMissionCommandIsNotConstructed if validation fails.
func (c LaunchMissionCommand) Validate() error {
	return c.guard.Validate(ErrLaunchMissionCommandIsNotConstructed)
}
