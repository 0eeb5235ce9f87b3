package drone

import (
	"errors"
	"fmt"
	"strings"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/parcel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

// Domain errors for drone operations.
var (
	// ErrModelIsRequired is returned when creating a drone without a model name.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrDroneIsNotConstructed is returned when using an improperly initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
	// ErrDroneIsNotAvailable is returned when asking a drone that is already flying to carry a parcel.
	ErrDroneIsNotAvailable = errors.New("drone is not available")
	// ErrDroneIsNotFlying is returned when asking a drone on the ground to deliver.
	ErrDroneIsNotFlying = errors.New("drone is not flying")
	// ErrInvariantViolated is returned when a drone ends up in an inconsistent state.
	ErrInvariantViolated = errors.New("drone invariant violated")
)

// Cargo is the drone's reference to the parcel it carries. It holds only what the
// drone needs to enforce its payload rule; the full parcel is resolved through the
// dispatch engine archive by ParcelID.
type Cargo struct {
	ParcelID kernel.ID
	Weight   kernel.Weight
}

// Drone is a fleet unit with a fixed identity and payload limit and a mutable
// availability state.
//
// Key responsibilities:
//   - Reporting availability to the mission planner
//   - Taking a parcel within its payload limit (AVAILABLE → FLYING)
//   - Releasing the parcel on delivery (FLYING → AVAILABLE)
//
// Example usage:
//
//	id, _ := kernel.NewID(1)
//	payload, _ := kernel.NewWeight(2.0)
//	d, err := drone.NewDrone(id, "Falcon-X", payload)
//	if err != nil {
//	    // handle construction error
//	}
//	if ok, _ := d.CanCarry(p); ok {
//	    _ = d.Carry(p)
//	}
type Drone struct {
	// id uniquely identifies the drone within the fleet
	id kernel.ID
	// model is the human-readable airframe name
	model string
	// maxPayload is the heaviest parcel the drone can lift
	maxPayload kernel.Weight
	// status tells whether the drone is on the ground or in the air
	status Status
	// cargo references the carried parcel; nil while available
	cargo *Cargo
	// guard ensures the drone was properly constructed
	guard guard.ConstructorGuard
}

// NewDrone creates an available Drone.
//
// Parameters:
//   - id: Drone identifier (must be constructed)
//   - model: Airframe name (must be non-blank)
//   - maxPayload: Heaviest parcel the drone can carry (must be constructed)
//
// Returns:
//   - *Drone: A drone in the AVAILABLE state with nothing on board
//   - error: Joined validation errors for every invalid parameter
func NewDrone(id kernel.ID, model string, maxPayload kernel.Weight) (*Drone, error) {
	d := &Drone{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setModel(model),
		d.setMaxPayload(maxPayload),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the drone was constructed and that its state invariants hold:
// FLYING if and only if cargo is present, and cargo never heavier than the payload limit.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	if err := d.guard.Validate(ErrDroneIsNotConstructed); err != nil {
		return err
	}
	return d.checkInvariants()
}

// IsEqual compares drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone identifier.
func (d *Drone) ID() kernel.ID {
	return d.id
}

// Model returns the airframe name.
func (d *Drone) Model() string {
	return d.model
}

// MaxPayload returns the payload limit.
func (d *Drone) MaxPayload() kernel.Weight {
	return d.maxPayload
}

// Status returns the current availability state.
func (d *Drone) Status() Status {
	return d.status
}

// IsAvailable reports whether the drone is on the ground and free.
func (d *Drone) IsAvailable() bool {
	return d.status == Available
}

// Cargo returns a copy of the carried parcel reference, or nil while available.
func (d *Drone) Cargo() *Cargo {
	if d.cargo == nil {
		return nil
	}
	c := *d.cargo
	return &c
}

// Clone returns an independent copy, used to hand read-only snapshots to callers
// outside the engine.
func (d *Drone) Clone() *Drone {
	c := *d
	c.cargo = d.Cargo()
	return &c
}

// CanCarry reports whether the drone is available and strong enough for p.
// It does not change the drone.
//
// Returns:
//   - bool: true if Carry(p) would succeed
//   - error: Validation error if p was not constructed
func (d *Drone) CanCarry(p parcel.Parcel) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	return d.IsAvailable() && !p.Weight().Exceeds(d.maxPayload), nil
}

// Carry puts p on board and switches the drone to FLYING.
//
// Preconditions:
//   - The drone is available (ErrDroneIsNotAvailable otherwise)
//   - p was constructed
//   - p's weight does not exceed the payload limit (ValueIsOutOfRangeError otherwise)
//
// State changes:
//   - status becomes Flying
//   - Cargo() references p
func (d *Drone) Carry(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if !d.IsAvailable() {
		return ErrDroneIsNotAvailable
	}

	if p.Weight().Exceeds(d.maxPayload) {
		return errs.NewValueIsOutOfRangeError(
			"parcel weight", p.Weight().Kilograms(), 0, d.maxPayload.Kilograms(),
		)
	}

	d.cargo = &Cargo{ParcelID: p.ID(), Weight: p.Weight()}
	d.status = Flying
	return d.checkInvariants()
}

// Deliver drops the carried parcel and returns the drone to AVAILABLE.
//
// Preconditions:
//   - The drone is flying with a parcel on board (ErrDroneIsNotFlying otherwise)
func (d *Drone) Deliver() error {
	if d.status != Flying || d.cargo == nil {
		return ErrDroneIsNotFlying
	}

	d.cargo = nil
	d.status = Available
	return d.checkInvariants()
}

// Description renders the drone for operator-facing reports, without the parcel
// details (the engine resolves and appends those from its archive).
func (d *Drone) Description() string {
	return fmt.Sprintf("drone %s, model %s, max payload = %s kg, state %s",
		d.id, d.model, d.maxPayload, d.status)
}

func (d *Drone) checkInvariants() error {
	if err := d.status.Validate(); err != nil {
		return errors.Join(ErrInvariantViolated, err)
	}

	switch d.status {
	case Flying:
		if d.cargo == nil {
			return fmt.Errorf("%w: drone %s is flying without cargo", ErrInvariantViolated, d.id)
		}
		if d.cargo.Weight.Exceeds(d.maxPayload) {
			return fmt.Errorf("%w: drone %s carries %s kg over its %s kg limit",
				ErrInvariantViolated, d.id, d.cargo.Weight, d.maxPayload)
		}
	case Available:
		if d.cargo != nil {
			return fmt.Errorf("%w: drone %s is available with cargo on board", ErrInvariantViolated, d.id)
		}
	}

	return nil
}

func (d *Drone) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}
	d.model = model
	return nil
}

func (d *Drone) setMaxPayload(maxPayload kernel.Weight) error {
	if err := maxPayload.Validate(); err != nil {
		return err
	}
	d.maxPayload = maxPayload
	return nil
}
