// Package ports defines the contracts between the dispatch core and the
// infrastructure that feeds it.
package ports

import (
	"context"
	"errors"
)

// Errors shared by every ScenarioSource implementation.
var (
	// ErrSourceUnavailable is returned when the scenario cannot be opened or read.
	ErrSourceUnavailable = errors.New("scenario source unavailable")
	// ErrMalformedLine is returned when a descriptor line cannot be parsed.
	ErrMalformedLine = errors.New("malformed scenario line")
)

// RecordKind tells which entity a scenario record describes.
type RecordKind int

const (
	// UnknownRecord is the zero value and never produced by a source.
	UnknownRecord RecordKind = iota
	// DroneRecord describes a fleet drone.
	DroneRecord
	// ParcelRecord describes a package waiting for delivery.
	ParcelRecord
)

// String returns the scenario keyword of the record kind.
func (k RecordKind) String() string {
	switch k {
	case DroneRecord:
		return "DRONE"
	case ParcelRecord:
		return "COLIS"
	default:
		return "UNKNOWN"
	}
}

// ScenarioRecord is one already-parsed descriptor. Only the fields of its Kind
// are meaningful: ID, Model and MaxPayload for drones, ID, Weight and
// Destination for parcels.
type ScenarioRecord struct {
	Kind RecordKind
	// Line is the 1-based position of the descriptor in its source, for error reporting.
	Line int

	ID          int
	Model       string
	MaxPayload  float64
	Weight      float64
	Destination string
}

// ScenarioSource reads a whole scenario in descriptor order.
// Blank and comment lines never reach the caller.
//
// Example:
//
//	records, err := source.Read(ctx, "scenario_demo.txt")
//	if errors.Is(err, ports.ErrSourceUnavailable) {
//	    // report and keep the previous scenario
//	}
type ScenarioSource interface {
	// Read returns every record of the named scenario.
	// Returns ErrSourceUnavailable if it cannot be opened and ErrMalformedLine
	// (wrapped with the line number) when a descriptor cannot be parsed.
	Read(ctx context.Context, name string) ([]ScenarioRecord, error)
}
