package engine

import (
	"fmt"
	"strings"

	"dronefleet/internal/core/domain/model/kernel"
)

// LoadReport summarises a successful Load.
type LoadReport struct {
	Generation kernel.UUID
	Drones     int
	Parcels    int
}

// String renders the report the way the shell prints it.
func (r LoadReport) String() string {
	return fmt.Sprintf("Scenario loaded: %d drones and %d packages", r.Drones, r.Parcels)
}

// PlanReport counts what one PlanMissions call did with the queue.
type PlanReport struct {
	PendingBefore int
	Planned       int
	Rejected      int
	PendingAfter  int
}

// String renders the report the way the shell prints it.
func (r PlanReport) String() string {
	return fmt.Sprintf("%d packages pending\n%d missions planned successfully\n%d packages still pending\n",
		r.PendingBefore, r.Planned, r.PendingAfter)
}

// Outcome is the result of a lifecycle command.
type Outcome struct {
	// Applied is false when the command found nothing to do.
	Applied bool
	// Message is the line shown to the operator.
	Message string
	// Notification is the text pushed onto the notification log.
	Notification string
}

// Statistics is a snapshot of fleet and mission counters.
type Statistics struct {
	Drones            int
	AvailableDrones   int
	FlyingDrones      int
	ActiveMissions    int
	CompletedMissions int
	PendingParcels    int
}

// String renders the statistics block of the shell.
func (s Statistics) String() string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Number of drones: %d\n", s.Drones)
	fmt.Fprintf(&b, "Available drones: %d\n", s.AvailableDrones)
	fmt.Fprintf(&b, "Drones on mission: %d\n", s.FlyingDrones)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Planned missions: %d\n", s.ActiveMissions)
	fmt.Fprintf(&b, "Completed missions: %d\n", s.CompletedMissions)
	fmt.Fprintf(&b, "Pending packages: %d\n", s.PendingParcels)
	return b.String()
}

// ContractViolation is the panic value raised when a command breaks an entity
// invariant.
type ContractViolation struct {
	Op  string
	Err error
}

func (v *ContractViolation) Error() string {
	return fmt.Sprintf("engine contract violated in %s: %v", v.Op, v.Err)
}

func (v *ContractViolation) Unwrap() error {
	return v.Err
}
