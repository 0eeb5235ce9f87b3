package engine

import (
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/mission"
	"dronefleet/internal/core/domain/model/parcel"
	"dronefleet/internal/core/ports"
)

// ErrMalformedRecord is returned by Load when a record cannot be turned into a
// drone or a parcel. The engine state is left untouched.
var ErrMalformedRecord = errors.New("malformed scenario record")

// State is everything a scenario owns. A load builds a fresh State and swaps it in,
// so nothing from a previous scenario survives except the notification log.
type State struct {
	generation kernel.UUID
	fleet      []*drone.Drone
	pending    []parcel.Parcel
	active     []*mission.Mission
	completed  []*mission.Mission
	archive    []parcel.Parcel
}

func newState() *State {
	return &State{generation: kernel.NewUUID()}
}

// buildState turns records into a new State, in record order.
func buildState(records []ports.ScenarioRecord) (*State, error) {
	s := newState()

	for _, record := range records {
		if err := s.apply(record); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, record.Line, err)
		}
	}

	return s, nil
}

func (s *State) apply(record ports.ScenarioRecord) error {
	id, err := kernel.NewID(record.ID)
	if err != nil {
		return err
	}

	switch record.Kind {
	case ports.DroneRecord:
		maxPayload, err := kernel.NewWeight(record.MaxPayload)
		if err != nil {
			return err
		}
		d, err := drone.NewDrone(id, record.Model, maxPayload)
		if err != nil {
			return err
		}
		s.fleet = append(s.fleet, d)

	case ports.ParcelRecord:
		weight, err := kernel.NewWeight(record.Weight)
		if err != nil {
			return err
		}
		p, err := parcel.NewParcel(id, weight, record.Destination)
		if err != nil {
			return err
		}
		s.archive = append(s.archive, p)
		s.pending = append(s.pending, p)

	default:
		return fmt.Errorf("unsupported record kind %s", record.Kind)
	}

	return nil
}

func (s *State) dequeue() {
	s.pending[0] = parcel.Parcel{}
	s.pending = s.pending[1:]
}

func (s *State) findArchived(id kernel.ID) (parcel.Parcel, bool) {
	for _, p := range s.archive {
		if p.ID().IsEqual(id) {
			return p, true
		}
	}
	return parcel.Parcel{}, false
}

func (s *State) firstActive(status mission.Status) (int, *mission.Mission) {
	for i, m := range s.active {
		if m.Status() == status {
			return i, m
		}
	}
	return -1, nil
}

func (s *State) removeActive(index int) {
	s.active = append(s.active[:index], s.active[index+1:]...)
}

// checkInvariants verifies every entity of the state. It is run after each
// mutating command.
func (s *State) checkInvariants() error {
	for _, d := range s.fleet {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	for _, p := range s.archive {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, m := range s.active {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.Status() == mission.Completed {
			return fmt.Errorf("completed mission %s still active", m.Description())
		}
	}
	for _, m := range s.completed {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.Status() != mission.Completed {
			return fmt.Errorf("mission %s logged as completed", m.Description())
		}
	}
	return nil
}
