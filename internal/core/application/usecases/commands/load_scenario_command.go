package commands

import (
	"errors"
	"strings"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var (
	ErrLoadScenarioCommandIsNotConstructed = errors.New(
		"LoadScenarioCommand must be created via NewLoadScenarioCommand constructor",
	)
	// ErrSourceIsRequired is returned when the scenario source name is blank.
	ErrSourceIsRequired = errs.NewValueIsRequiredError("source")
)

// LoadScenarioCommand replaces the running scenario with the one read from a source.
// The source name is interpreted by the configured ports.ScenarioSource: a file
// path for the text source, a scenario name for the database source.
//
// Example:
//
//	cmd, err := NewLoadScenarioCommand("scenario_demo.txt")
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type LoadScenarioCommand struct {
	source string

	guard guard.ConstructorGuard
}

// NewLoadScenarioCommand creates a load command. Surrounding whitespace is trimmed.
// Returns ErrSourceIsRequired if source is blank.
func NewLoadScenarioCommand(source string) (LoadScenarioCommand, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return LoadScenarioCommand{}, ErrSourceIsRequired
	}

	return LoadScenarioCommand{
		source: source,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadScenarioCommand) Validate() error {
	return c.guard.Validate(ErrLoadScenarioCommandIsNotConstructed)
}

// Source returns the scenario source name.
func (c LoadScenarioCommand) Source() string {
	return c.source
}
