package queries

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrDescribeSystemQueryIsNotConstructed = errors.New(
	"DescribeSystemQuery must be created via NewDescribeSystemQuery constructor",
)

// DescribeSystemQuery retrieves the fleet, the queue and the missions of the
// running scenario.
//
// Example:
//
//	view, err := handler.Handle(ctx, NewDescribeSystemQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(view.Text)
type DescribeSystemQuery struct {
	guard guard.ConstructorGuard
}

// NewDescribeSystemQuery creates the query.
func NewDescribeSystemQuery() DescribeSystemQuery {
	return DescribeSystemQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DescribeSystemQuery) Validate() error {
	return q.guard.Validate(ErrDescribeSystemQueryIsNotConstructed)
}

// DroneView is the read model of one drone.
type DroneView struct {
	ID         int
	Model      string
	MaxPayload float64
	Status     string
	// ParcelID is zero while the drone is available.
	ParcelID int
}

// ParcelView is the read model of one parcel.
type ParcelView struct {
	ID          int
	Weight      float64
	Destination string
}

// MissionView is the read model of one mission.
type MissionView struct {
	DroneID  int
	ParcelID int
	Status   string
}

// DescribeSystemQueryResponse is the system snapshot. Text is the operator report
// rendered by the engine; the other fields carry the same data in structured form.
type DescribeSystemQueryResponse struct {
	Generation        string
	Text              string
	Drones            []DroneView
	Pending           []ParcelView
	ActiveMissions    []MissionView
	CompletedMissions []MissionView
}
