package engine

import (
	"dronefleet/internal/core/domain/model/kernel"
)

// DefaultWeightCeiling is the heaviest parcel, in kilograms, the planner accepts
// when no other ceiling is configured.
const DefaultWeightCeiling = 2.0

// Policy holds the tunable rules of mission planning.
type Policy struct {
	// WeightCeiling rejects any parcel strictly heavier than it, whatever the fleet.
	WeightCeiling kernel.Weight
}

// DefaultPolicy returns the policy with a 2.0 kg weight ceiling.
func DefaultPolicy() Policy {
	ceiling, err := kernel.NewWeight(DefaultWeightCeiling)
	if err != nil {
		panic(err)
	}
	return Policy{WeightCeiling: ceiling}
}

// NewPolicy builds a policy with the given weight ceiling in kilograms.
func NewPolicy(weightCeiling float64) (Policy, error) {
	ceiling, err := kernel.NewWeight(weightCeiling)
	if err != nil {
		return Policy{}, err
	}
	return Policy{WeightCeiling: ceiling}, nil
}

// Validate reports whether the policy was built through NewPolicy or DefaultPolicy.
func (p Policy) Validate() error {
	return p.WeightCeiling.Validate()
}
