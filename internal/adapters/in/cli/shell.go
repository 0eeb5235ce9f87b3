// Package cli is the operator console of the dispatch engine: an interactive
// numbered menu, a one-shot script runner and the cobra commands that start them.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/pkg/errs"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Handlers groups the use case handlers the console drives.
type Handlers struct {
	LoadScenario    commands.LoadScenarioCommandHandler
	PlanMissions    commands.PlanMissionsCommandHandler
	LaunchMission   commands.LaunchMissionCommandHandler
	CompleteMission commands.CompleteMissionCommandHandler
	PopNotification commands.PopNotificationCommandHandler
	DescribeSystem  queries.DescribeSystemQueryHandler
	GetStatistics   queries.GetStatisticsQueryHandler
	GetPackage      queries.GetPackageQueryHandler
}

// Choice is a menu entry.
type Choice int

// Menu entries, numbered as displayed.
const (
	ChoiceQuit Choice = iota
	ChoiceLoad
	ChoicePlan
	ChoiceLaunch
	ChoiceComplete
	ChoiceDescribe
	ChoiceStatistics
	ChoiceNotification
	ChoiceFleet
	ChoiceLookup
)

var stepNames = map[string]Choice{
	"quit":     ChoiceQuit,
	"load":     ChoiceLoad,
	"plan":     ChoicePlan,
	"launch":   ChoiceLaunch,
	"complete": ChoiceComplete,
	"system":   ChoiceDescribe,
	"stats":    ChoiceStatistics,
	"notify":   ChoiceNotification,
	"fleet":    ChoiceFleet,
	"package":  ChoiceLookup,
}

// ErrUnknownStep is returned by RunScript for a step it cannot map to a menu entry.
var ErrUnknownStep = errors.New("unknown script step")

// Shell runs menu choices against the use case handlers and prints the results.
// Failures are printed, never returned, so an interactive session survives them.
type Shell struct {
	handlers Handlers
	scenario string

	in  *bufio.Scanner
	out io.Writer

	heading *color.Color
	success *color.Color
	failure *color.Color
}

// NewShell creates a shell reading choices from in and writing to out.
// scenario is the source loaded by the load entry when none is given.
func NewShell(handlers Handlers, scenario string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		handlers: handlers,
		scenario: scenario,
		in:       bufio.NewScanner(in),
		out:      out,
		heading:  color.New(color.FgCyan, color.Bold),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
}

// RunMenu shows the menu until the operator quits or the input ends.
func (s *Shell) RunMenu(ctx context.Context) error {
	s.heading.Fprintln(s.out, "=== Drone fleet control ===")

	for {
		s.printMenu()
		if !s.in.Scan() {
			return s.in.Err()
		}

		line := strings.TrimSpace(s.in.Text())
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.failure.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		if !s.Execute(ctx, Choice(choice), "") {
			return nil
		}
	}
}

// RunScript executes comma-separated steps in order. A step is a menu number or
// a name (load, plan, launch, complete, system, stats, notify, fleet, package),
// optionally followed by "=argument": load=<source> or package=<id>.
func (s *Shell) RunScript(ctx context.Context, script string) error {
	for _, raw := range strings.Split(script, ",") {
		step := strings.TrimSpace(raw)
		if step == "" {
			continue
		}

		name, argument, _ := strings.Cut(step, "=")
		choice, ok := stepNames[strings.ToLower(name)]
		if !ok {
			number, err := strconv.Atoi(name)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnknownStep, step)
			}
			choice = Choice(number)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Execute(ctx, choice, argument) {
			return nil
		}
	}
	return nil
}

// Execute runs one menu entry. It returns false once the operator quits.
func (s *Shell) Execute(ctx context.Context, choice Choice, argument string) bool {
	switch choice {
	case ChoiceQuit:
		fmt.Fprintln(s.out, "Goodbye!")
		return false
	case ChoiceLoad:
		s.load(ctx, argument)
	case ChoicePlan:
		s.plan(ctx)
	case ChoiceLaunch:
		s.launch(ctx)
	case ChoiceComplete:
		s.complete(ctx)
	case ChoiceDescribe:
		s.describe(ctx)
	case ChoiceStatistics:
		s.statistics(ctx)
	case ChoiceNotification:
		s.notification(ctx)
	case ChoiceFleet:
		s.fleet(ctx)
	case ChoiceLookup:
		s.lookup(ctx, argument)
	default:
		s.failure.Fprintln(s.out, "Invalid choice. Please try again.")
	}
	return true
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "======= MENU =======")
	fmt.Fprintln(s.out, "1. Load a scenario")
	fmt.Fprintln(s.out, "2. Plan missions")
	fmt.Fprintln(s.out, "3. Launch the next mission")
	fmt.Fprintln(s.out, "4. Complete the current mission")
	fmt.Fprintln(s.out, "5. Show system state")
	fmt.Fprintln(s.out, "6. Show statistics")
	fmt.Fprintln(s.out, "7. Last notification")
	fmt.Fprintln(s.out, "8. Fleet table")
	fmt.Fprintln(s.out, "9. Find a package")
	fmt.Fprintln(s.out, "0. Quit")
	fmt.Fprint(s.out, "Your choice: ")
}

func (s *Shell) load(ctx context.Context, source string) {
	s.heading.Fprintln(s.out, "[LOADING]")
	if source == "" {
		source = s.scenario
	}

	cmd, err := commands.NewLoadScenarioCommand(source)
	if err != nil {
		s.failure.Fprintf(s.out, "[FAILURE] Unable to load the scenario: %v\n", err)
		return
	}

	report, err := s.handlers.LoadScenario.Handle(ctx, cmd)
	if err != nil {
		s.failure.Fprintf(s.out, "[FAILURE] Unable to load the scenario: %v\n", err)
		return
	}

	fmt.Fprintln(s.out, report)
	s.success.Fprintln(s.out, "[SUCCESS] Data loaded!")
}

func (s *Shell) plan(ctx context.Context) {
	s.heading.Fprintln(s.out, "[PLANNING]")
	report, err := s.handlers.PlanMissions.Handle(ctx, commands.NewPlanMissionsCommand())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprint(s.out, report)
}

func (s *Shell) launch(ctx context.Context) {
	s.heading.Fprintln(s.out, "[LAUNCH]")
	outcome, err := s.handlers.LaunchMission.Handle(ctx, commands.NewLaunchMissionCommand())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, outcome.Message)
}

func (s *Shell) complete(ctx context.Context) {
	s.heading.Fprintln(s.out, "[COMPLETION]")
	outcome, err := s.handlers.CompleteMission.Handle(ctx, commands.NewCompleteMissionCommand())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, outcome.Message)
}

func (s *Shell) describe(ctx context.Context) {
	s.heading.Fprintln(s.out, "[SYSTEM STATE]")
	view, err := s.handlers.DescribeSystem.Handle(ctx, queries.NewDescribeSystemQuery())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, view.Text)
}

func (s *Shell) statistics(ctx context.Context) {
	s.heading.Fprintln(s.out, "[STATISTICS]")
	stats, err := s.handlers.GetStatistics.Handle(ctx, queries.NewGetStatisticsQuery())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, stats)
}

func (s *Shell) notification(ctx context.Context) {
	s.heading.Fprintln(s.out, "[NOTIFICATION]")
	result, err := s.handlers.PopNotification.Handle(ctx, commands.NewPopNotificationCommand())
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, result.Message)
}

func (s *Shell) fleet(ctx context.Context) {
	s.heading.Fprintln(s.out, "[FLEET]")
	view, err := s.handlers.DescribeSystem.Handle(ctx, queries.NewDescribeSystemQuery())
	if err != nil {
		s.printError(err)
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "MODEL", "MAX PAYLOAD", "STATUS", "PACKAGE")
	for _, d := range view.Drones {
		parcel := "-"
		if d.ParcelID != 0 {
			parcel = strconv.Itoa(d.ParcelID)
		}
		table.AddRow(d.ID, d.Model, strconv.FormatFloat(d.MaxPayload, 'g', -1, 64)+" kg", d.Status, parcel)
	}
	fmt.Fprintln(s.out, table)
}

func (s *Shell) lookup(ctx context.Context, argument string) {
	s.heading.Fprintln(s.out, "[PACKAGE]")
	if argument == "" {
		fmt.Fprint(s.out, "Package id: ")
		if !s.in.Scan() {
			return
		}
		argument = s.in.Text()
	}

	id, err := strconv.Atoi(strings.TrimSpace(argument))
	if err != nil {
		s.failure.Fprintf(s.out, "Invalid package id %q.\n", argument)
		return
	}
	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		s.failure.Fprintf(s.out, "Invalid package id %q.\n", argument)
		return
	}

	view, err := s.handlers.GetPackage.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		s.failure.Fprintln(s.out, "Package not found.")
		return
	}
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, view.Description)
}

func (s *Shell) printError(err error) {
	s.failure.Fprintf(s.out, "Error: %v\n", err)
}
