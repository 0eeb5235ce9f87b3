package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrCompleteMissionCommandIsNotConstructed = errors.New(
	"CompleteMissionCommand must be created via NewCompleteMissionCommand constructor",
)

// CompleteMissionCommand completes the first mission in progress and frees its drone.
// This is a parameterless command.
type CompleteMissionCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteMissionCommand creates the command.
func NewCompleteMissionCommand() CompleteMissionCommand {
	return CompleteMissionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteMissionCommandIsNotConstructed if validation fails.
func (c CompleteMissionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMissionCommandIsNotConstructed)
}
