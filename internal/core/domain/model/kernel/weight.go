package kernel

import (
	"fmt"
	"math"
	"strconv"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is a strictly positive mass in kilograms. It is used both for the weight
// of a parcel and for the maximum payload a drone can lift, so the two can be
// compared directly.
//
// Weight is immutable. The zero value is invalid.
//
// Example:
//
//	w, _ := kernel.NewWeight(1.75)
//	limit, _ := kernel.NewWeight(2)
//	w.Exceeds(limit)   // false
//	w.String()         // "1.75"
//	w.OneDecimal()     // "1.8"
type Weight struct { //nolint:recvcheck //using for validation
	kilograms float64
	guard     guard.ConstructorGuard
}

// NewWeight creates a Weight from a number of kilograms.
//
// Parameters:
//   - kilograms: The mass (must be finite and > 0)
//
// Returns:
//   - Weight: The constructed value
//   - error: ValueIsInvalidError when kilograms is not a finite positive number
func NewWeight(kilograms float64) (Weight, error) {
	w := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := w.setKilograms(kilograms); err != nil {
		return Weight{}, err
	}

	return w, nil
}

// Kilograms returns the raw value.
func (w Weight) Kilograms() float64 {
	return w.kilograms
}

// Exceeds reports whether w is strictly heavier than other.
func (w Weight) Exceeds(other Weight) bool {
	return w.kilograms > other.kilograms
}

// String renders the shortest representation that round-trips ("2", "1.5").
func (w Weight) String() string {
	return strconv.FormatFloat(w.kilograms, 'g', -1, 64)
}

// OneDecimal renders the weight with exactly one decimal place ("1.0", "0.8").
func (w Weight) OneDecimal() string {
	return strconv.FormatFloat(w.kilograms, 'f', 1, 64)
}

// Validate returns ErrWeightIsNotConstructed for the zero value.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w *Weight) setKilograms(kilograms float64) error {
	if math.IsNaN(kilograms) || math.IsInf(kilograms, 0) || kilograms <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%g is not a positive number of kilograms", kilograms),
		)
	}

	w.kilograms = kilograms
	return nil
}
