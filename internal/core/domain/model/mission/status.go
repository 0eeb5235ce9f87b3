package mission

import (
	"context"
	"errors"
	"fmt"

	"dronefleet/internal/pkg/errs"

	"github.com/looplab/fsm"
)

// ErrStatusTransitionIsInvalid is returned when a mission is asked to move to a
// state that is not the next one in its lifecycle.
var ErrStatusTransitionIsInvalid = errors.New("mission status transition is invalid")

// Status is the lifecycle state of a mission.
type Status int

const (
	// Unknown is the zero value and is never a valid mission state.
	Unknown Status = iota

	// Planned means a drone has been bound to the parcel but has not taken off.
	Planned

	// InProgress means the drone is flying the parcel to its destination.
	InProgress

	// Completed means the parcel was delivered and the drone released.
	Completed
)

const (
	eventLaunch   = "launch"
	eventComplete = "complete"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Planned:    "PLANNED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Planned:    "PLANNED",
		InProgress: "IN PROGRESS",
		Completed:  "COMPLETED",
	}
}

// lifecycle is the transition table. Events are named after the engine
// commands that trigger them.
func lifecycle() fsm.Events {
	return fsm.Events{
		{Name: eventLaunch, Src: []string{Planned.String()}, Dst: InProgress.String()},
		{Name: eventComplete, Src: []string{InProgress.String()}, Dst: Completed.String()},
	}
}

// Validate checks that s is one of the three lifecycle states.
func (s Status) Validate() error {
	if s != Planned && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the identifier-style name (PLANNED, IN_PROGRESS, COMPLETED).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the name used in mission descriptions (IN PROGRESS with a space).
func (s Status) Label() string {
	if str, ok := getStatusLabels()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TransitionTo returns target when the lifecycle allows moving from s to target.
//
// Returns:
//   - Status: target on success, s otherwise
//   - error: ValueIsInvalidError for an unknown target, or an error wrapping
//     ErrStatusTransitionIsInvalid when the move is not in the transition table
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}

	event, ok := eventInto(target)
	if !ok {
		return s, fmt.Errorf("%w: no event leads to %s", ErrStatusTransitionIsInvalid, target)
	}

	machine := fsm.NewFSM(s.String(), lifecycle(), fsm.Callbacks{})
	if err := machine.Event(context.Background(), event); err != nil {
		return s, fmt.Errorf("%w: %s to %s (%w)", ErrStatusTransitionIsInvalid, s, target, err)
	}

	return target, nil
}

func eventInto(target Status) (string, bool) {
	for _, e := range lifecycle() {
		if e.Dst == target.String() {
			return e.Name, true
		}
	}
	return "", false
}
