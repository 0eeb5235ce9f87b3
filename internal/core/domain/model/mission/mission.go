package mission

import (
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/guard"
)

// ErrMissionIsNotConstructed is returned when using a zero-value Mission.
var ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission constructor")

// Mission binds a drone to a parcel and tracks the delivery through its lifecycle.
//
// Business rules:
//   - Both identifiers must be constructed (hence positive)
//   - A new mission starts PLANNED
//   - Only the transitions of the lifecycle table are accepted
//
// Example usage:
//
//	m, err := mission.NewMission(droneID, parcelID)
//	if err != nil {
//	    // handle construction error
//	}
//	_ = m.Launch()   // PLANNED → IN_PROGRESS
//	_ = m.Complete() // IN_PROGRESS → COMPLETED
type Mission struct {
	droneID  kernel.ID
	parcelID kernel.ID
	status   Status
	guard    guard.ConstructorGuard
}

// NewMission creates a PLANNED mission for the given drone and parcel.
//
// Returns:
//   - *Mission: The planned mission
//   - error: Joined validation errors if either identifier was not constructed
func NewMission(droneID kernel.ID, parcelID kernel.ID) (*Mission, error) {
	m := &Mission{
		status: Planned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setDroneID(droneID),
		m.setParcelID(parcelID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks construction and the identifier invariants.
func (m *Mission) Validate() error {
	if m == nil {
		return ErrMissionIsNotConstructed
	}
	if err := m.guard.Validate(ErrMissionIsNotConstructed); err != nil {
		return err
	}
	return errors.Join(m.droneID.Validate(), m.parcelID.Validate(), m.status.Validate())
}

// IsEqual compares missions by (drone, parcel) pair, ignoring state.
func (m *Mission) IsEqual(other *Mission) bool {
	return other != nil && m.droneID.IsEqual(other.droneID) && m.parcelID.IsEqual(other.parcelID)
}

// DroneID returns the identifier of the assigned drone.
func (m *Mission) DroneID() kernel.ID {
	return m.droneID
}

// ParcelID returns the identifier of the delivered parcel.
func (m *Mission) ParcelID() kernel.ID {
	return m.parcelID
}

// Status returns the lifecycle state.
func (m *Mission) Status() Status {
	return m.status
}

// SetStatus moves the mission to status if the lifecycle table allows it, then
// re-validates the mission. A rejected move leaves the mission unchanged.
func (m *Mission) SetStatus(status Status) error {
	next, err := m.status.TransitionTo(status)
	if err != nil {
		return err
	}

	m.status = next
	return m.Validate()
}

// Launch is SetStatus(InProgress).
func (m *Mission) Launch() error {
	return m.SetStatus(InProgress)
}

// Complete is SetStatus(Completed).
func (m *Mission) Complete() error {
	return m.SetStatus(Completed)
}

// Clone returns an independent copy.
func (m *Mission) Clone() *Mission {
	c := *m
	return &c
}

// Description renders the mission for notifications.
func (m *Mission) Description() string {
	return fmt.Sprintf("[Drone #%s → Package #%s] State: %s", m.droneID, m.parcelID, m.status.Label())
}

func (m *Mission) setDroneID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.droneID = id
	return nil
}

func (m *Mission) setParcelID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.parcelID = id
	return nil
}
