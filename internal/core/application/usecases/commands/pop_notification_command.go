package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrPopNotificationCommandIsNotConstructed = errors.New(
	"PopNotificationCommand must be created via NewPopNotificationCommand constructor",
)

// PopNotificationCommand removes the newest notification from the log.
// It is a command rather than a query because reading the notification consumes it.
type PopNotificationCommand struct {
	guard guard.ConstructorGuard
}

// NewPopNotificationCommand creates the command.
func NewPopNotificationCommand() PopNotificationCommand {
	return PopNotificationCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PopNotificationCommand) Validate() error {
	return c.guard.Validate(ErrPopNotificationCommandIsNotConstructed)
}

// PopNotificationResult is the popped message. When the log was empty, Found is
// false and Message is engine.EmptyNotification.
type PopNotificationResult struct {
	Message string
	Found   bool
}
