package services

import (
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/mission"
	"dronefleet/internal/core/domain/model/parcel"
)

// ErrDroneNotFound is returned when no drone of the fleet can take the parcel,
// either because the fleet is empty, every drone is flying, or none is strong enough.
var ErrDroneNotFound = errors.New("drone not found")

// MissionDispatcher is a domain service that matches one parcel to one drone.
//
// Selection rule (first fit):
//   - Drones are considered in fleet order
//   - The first drone that is available and whose payload limit is at least the
//     parcel weight is chosen; later drones are never compared against it
//
// Business rules:
//   - The parcel must be valid before dispatch
//   - A flying drone is never selected
//   - The assignment is atomic: the drone is loaded only once the mission exists
//
// Example usage:
//
//	dispatcher := services.NewMissionDispatcher()
//	d, m, err := dispatcher.Dispatch(p, fleet)
//	if errors.Is(err, services.ErrDroneNotFound) {
//	    // leave p queued
//	    return
//	}
//	if err != nil {
//	    // programming error
//	}
//	// d is FLYING with p on board, m is PLANNED
type MissionDispatcher struct{}

// NewMissionDispatcher creates a new MissionDispatcher instance.
func NewMissionDispatcher() MissionDispatcher {
	return MissionDispatcher{}
}

// Dispatch loads p on the first eligible drone and returns the drone together with
// the planned mission linking them.
//
// Parameters:
//   - p: The parcel to deliver (must be valid)
//   - fleet: Drones in fleet order
//
// Returns:
//   - *drone.Drone: The drone now carrying p
//   - *mission.Mission: A PLANNED mission for (drone, p)
//   - error: ErrDroneNotFound if no drone fits, or validation errors
func (d MissionDispatcher) Dispatch(p parcel.Parcel, fleet []*drone.Drone) (*drone.Drone, *mission.Mission, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	chosen, err := d.findFirstDrone(p, fleet)
	if err != nil {
		return nil, nil, err
	}

	planned, err := mission.NewMission(chosen.ID(), p.ID())
	if err != nil {
		return nil, nil, err
	}

	if err = chosen.Carry(p); err != nil {
		return nil, nil, err
	}

	return chosen, planned, nil
}

// findFirstDrone walks the fleet in order and stops at the first drone that can
// carry p.
func (d MissionDispatcher) findFirstDrone(p parcel.Parcel, fleet []*drone.Drone) (*drone.Drone, error) {
	for _, candidate := range fleet {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		canCarry, err := candidate.CanCarry(p)
		if err != nil {
			return nil, err
		}

		if canCarry {
			return candidate, nil
		}
	}

	return nil, ErrDroneNotFound
}
