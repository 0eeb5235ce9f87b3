package drone

import (
	"fmt"

	"dronefleet/internal/pkg/errs"
)

// Status is the availability state of a drone.
type Status int

const (
	// Unknown is the zero value and is never a valid drone state.
	Unknown Status = iota

	// Available means the drone is on the ground with nothing on board.
	Available

	// Flying means the drone carries a parcel.
	Flying
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Flying:    "FLYING",
	}
}

// Validate checks that s is Available or Flying.
func (s Status) Validate() error {
	if s != Available && s != Flying {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case label used in reports.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
