package parcel

import (
	"errors"
	"fmt"
	"strings"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var (
	// ErrDestinationIsRequired is returned when a parcel is created without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrParcelIsNotConstructed is returned when using a zero-value Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is an immutable delivery request: what to carry, how heavy it is and
// where it goes. It is passed and stored by value; copies are interchangeable.
//
// Example usage:
//
//	id, _ := kernel.NewID(1)
//	weight, _ := kernel.NewWeight(1.2)
//	p, err := parcel.NewParcel(id, weight, "12 Harbour Street")
//	if err != nil {
//	    // handle construction error
//	}
//	fmt.Println(p.Description()) // Package ID: 1, weight: 1.2kg, destination: 12 Harbour Street
type Parcel struct {
	// id identifies the parcel inside its scenario
	id kernel.ID
	// weight is the mass the carrying drone must lift
	weight kernel.Weight
	// destination is the free-form delivery address
	destination string
	// guard ensures the parcel was properly constructed
	guard guard.ConstructorGuard
}

// NewParcel creates a Parcel after validating every field.
//
// Parameters:
//   - id: Parcel identifier (must be constructed)
//   - weight: Parcel weight (must be constructed, hence positive)
//   - destination: Delivery address (must contain a non-blank character)
//
// Returns:
//   - Parcel: The constructed parcel
//   - error: Joined validation errors for every invalid field
func NewParcel(id kernel.ID, weight kernel.Weight, destination string) (Parcel, error) {
	p := Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setWeight(weight),
		p.setDestination(destination),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

// Validate checks that the Parcel was created via NewParcel.
func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares parcels by identifier.
func (p Parcel) IsEqual(other Parcel) bool {
	return p.id.IsEqual(other.id)
}

// ID returns the parcel identifier.
func (p Parcel) ID() kernel.ID {
	return p.id
}

// Weight returns the parcel weight.
func (p Parcel) Weight() kernel.Weight {
	return p.weight
}

// Destination returns the delivery address.
func (p Parcel) Destination() string {
	return p.destination
}

// Description renders the parcel for operator-facing reports.
func (p Parcel) Description() string {
	return fmt.Sprintf("Package ID: %s, weight: %skg, destination: %s", p.id, p.weight, p.destination)
}

func (p *Parcel) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}
	p.destination = destination
	return nil
}
