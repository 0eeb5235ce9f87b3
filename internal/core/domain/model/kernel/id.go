package kernel

import (
	"fmt"
	"strconv"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when a zero-value ID is used.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is the positive integer identity carried by drones, parcels and missions.
// Scenario files number their drones and parcels independently, so an ID only has
// meaning together with the kind of entity that owns it.
//
// The zero value of ID is invalid and fails Validate.
//
// Example:
//
//	id, err := kernel.NewID(3)
//	if err != nil {
//	    // id was not positive
//	}
//	fmt.Println(id) // 3
type ID struct {
	value int
	guard guard.ConstructorGuard
}

// NewID creates an ID from a strictly positive integer.
//
// Parameters:
//   - value: The numeric identity (must be > 0)
//
// Returns:
//   - ID: The constructed identifier
//   - error: ValueIsInvalidError when value is zero or negative
func NewID(value int) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return ID{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the raw integer.
func (i ID) Value() int {
	return i.value
}

// String returns the decimal representation.
func (i ID) String() string {
	return strconv.Itoa(i.value)
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	return i.guard.Validate(ErrIDIsNotConstructed)
}
