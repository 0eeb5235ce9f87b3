package commands

import (
	"context"

	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/core/ports"
)

// LoadScenarioCommandHandler reads a scenario and swaps it into the engine.
// The source is read before the engine is locked, so a slow source never blocks
// other commands.
//
// Example:
//
//	handler := NewLoadScenarioCommandHandler(scenariofile.New("data"), runner)
//	report, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ports.ErrSourceUnavailable):
//	    log.Println("cannot open scenario")
//	case errors.Is(err, engine.ErrMalformedRecord), errors.Is(err, ports.ErrMalformedLine):
//	    log.Println("scenario is invalid")
//	case err != nil:
//	    log.Printf("load failed: %v", err)
//	default:
//	    log.Println(report)
//	}
type LoadScenarioCommandHandler struct {
	source ports.ScenarioSource
	runner EngineRunner
}

// NewLoadScenarioCommandHandler creates a handler reading from source.
func NewLoadScenarioCommandHandler(source ports.ScenarioSource, runner EngineRunner) LoadScenarioCommandHandler {
	return LoadScenarioCommandHandler{
		source: source,
		runner: runner,
	}
}

// Handle loads the scenario. On error the running scenario is kept.
func (h LoadScenarioCommandHandler) Handle(ctx context.Context, command LoadScenarioCommand) (engine.LoadReport, error) {
	if err := command.Validate(); err != nil {
		return engine.LoadReport{}, err
	}

	records, err := h.source.Read(ctx, command.Source())
	if err != nil {
		return engine.LoadReport{}, err
	}

	var report engine.LoadReport
	err = h.runner.Run(ctx, func(e *engine.Engine) error {
		loaded, loadErr := e.Load(records)
		report = loaded
		return loadErr
	})
	if err != nil {
		return engine.LoadReport{}, err
	}

	return report, nil
}
