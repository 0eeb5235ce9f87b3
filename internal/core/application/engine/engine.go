package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/mission"
	"dronefleet/internal/core/domain/model/parcel"
	"dronefleet/internal/core/domain/services"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/pkg/errs"
)

// Engine is the dispatch engine: it plans missions for queued parcels and drives
// each mission through its lifecycle.
//
// Example usage:
//
//	e := engine.New(engine.DefaultPolicy(), slog.Default())
//	if _, err := e.Load(records); err != nil {
//	    // report and keep going with the previous scenario
//	}
//	report := e.PlanMissions()
//	e.LaunchNextMission()
//	e.CompleteCurrentMission()
//	fmt.Print(e.DescribeSystem())
type Engine struct {
	policy        Policy
	dispatcher    services.MissionDispatcher
	state         *State
	notifications *NotificationLog
	logger        *slog.Logger
}

// New creates an engine with an empty scenario.
// It panics if policy was not built through NewPolicy or DefaultPolicy.
func New(policy Policy, logger *slog.Logger) *Engine {
	if err := policy.Validate(); err != nil {
		panic(&ContractViolation{Op: "new engine", Err: err})
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		policy:        policy,
		dispatcher:    services.NewMissionDispatcher(),
		state:         newState(),
		notifications: NewNotificationLog(),
		logger:        logger.With("component", "dispatch_engine"),
	}
}

// Policy returns the planning policy in use.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Load replaces the scenario with the drones and parcels described by records.
// Fleet, queue, missions and archive are all rebuilt; the notification log is kept.
//
// Returns:
//   - LoadReport: What was loaded, with the new scenario generation
//   - error: ErrMalformedRecord wrapping the entity error; the previous scenario
//     is kept in that case
func (e *Engine) Load(records []ports.ScenarioRecord) (LoadReport, error) {
	next, err := buildState(records)
	if err != nil {
		return LoadReport{}, err
	}

	e.state = next
	report := LoadReport{
		Generation: next.generation,
		Drones:     len(next.fleet),
		Parcels:    len(next.archive),
	}

	e.logger.Info("scenario loaded",
		"generation", report.Generation.String(),
		"drones", report.Drones,
		"parcels", report.Parcels,
	)
	return report, nil
}

// PlanMissions walks the queue front to back and stops at the first parcel no
// drone can take.
//
// For the parcel at the front of the queue:
//   - heavier than the policy ceiling: rejected, dequeued, planning goes on
//   - first available drone in fleet order strong enough: loaded, a PLANNED mission
//     is appended to the active missions, dequeued, planning goes on
//   - otherwise: left at the front and planning stops
//
// Every parcel examined yields one notification.
func (e *Engine) PlanMissions() PlanReport {
	report := PlanReport{PendingBefore: len(e.state.pending)}

	for len(e.state.pending) > 0 {
		front := e.state.pending[0]

		if front.Weight().Exceeds(e.policy.WeightCeiling) {
			e.notifications.Push(fmt.Sprintf("Package #%s too heavy (> %s kg)",
				front.ID(), e.policy.WeightCeiling.OneDecimal()))
			e.state.dequeue()
			report.Rejected++
			continue
		}

		_, planned, err := e.dispatcher.Dispatch(front, e.state.fleet)
		if errors.Is(err, services.ErrDroneNotFound) {
			e.notifications.Push(fmt.Sprintf("No drone available for package #%s", front.ID()))
			break
		}
		if err != nil {
			e.violated("plan missions", err)
		}

		e.state.active = append(e.state.active, planned)
		e.state.dequeue()
		e.notifications.Push(fmt.Sprintf("Mission planned for package #%s", front.ID()))
		report.Planned++
	}

	report.PendingAfter = len(e.state.pending)
	e.verify("plan missions")

	e.logger.Info("missions planned",
		"pending_before", report.PendingBefore,
		"planned", report.Planned,
		"rejected", report.Rejected,
		"pending_after", report.PendingAfter,
	)
	return report
}

// LaunchNextMission moves the first PLANNED active mission to IN_PROGRESS.
// It advances at most one mission per call.
func (e *Engine) LaunchNextMission() Outcome {
	_, next := e.state.firstActive(mission.Planned)
	if next == nil {
		const message = "No planned mission to launch."
		e.notifications.Push(message)
		return Outcome{Message: message, Notification: message}
	}

	if err := next.Launch(); err != nil {
		e.violated("launch mission", err)
	}

	message := fmt.Sprintf("Mission launched: drone D%s assigned to package C%s", next.DroneID(), next.ParcelID())
	if p, ok := e.state.findArchived(next.ParcelID()); ok {
		message += fmt.Sprintf(" (%s kg)", p.Weight().OneDecimal())
	}
	notification := "Mission launched: " + next.Description()
	e.notifications.Push(notification)
	e.verify("launch mission")

	e.logger.Info("mission launched", "drone_id", next.DroneID().Value(), "parcel_id", next.ParcelID().Value())
	return Outcome{Applied: true, Message: message, Notification: notification}
}

// CompleteCurrentMission finishes the first IN_PROGRESS active mission: the
// mission is marked COMPLETED and moved to the completed log, and its drone
// delivers and becomes available again.
func (e *Engine) CompleteCurrentMission() Outcome {
	index, current := e.state.firstActive(mission.InProgress)
	if current == nil {
		const message = "No mission in progress to complete"
		e.notifications.Push(message)
		return Outcome{Message: message, Notification: message}
	}

	if err := current.Complete(); err != nil {
		e.violated("complete mission", err)
	}

	for _, d := range e.state.fleet {
		if d.ID().IsEqual(current.DroneID()) && !d.IsAvailable() {
			if err := d.Deliver(); err != nil {
				e.violated("complete mission", err)
			}
			break
		}
	}

	e.state.completed = append(e.state.completed, current)
	e.state.removeActive(index)

	message := fmt.Sprintf("Mission completed by drone D%s", current.DroneID())
	e.notifications.Push(message)
	e.verify("complete mission")

	e.logger.Info("mission completed", "drone_id", current.DroneID().Value(), "parcel_id", current.ParcelID().Value())
	return Outcome{Applied: true, Message: message, Notification: message}
}

// LookupPackage finds a parcel of the current scenario by id, whether it is
// queued, in flight or delivered.
//
// Returns:
//   - parcel.Parcel: The archived parcel
//   - error: *errs.ObjectNotFoundError if no parcel has this id
func (e *Engine) LookupPackage(id int) (parcel.Parcel, error) {
	parcelID, err := kernel.NewID(id)
	if err != nil {
		return parcel.Parcel{}, errs.NewObjectNotFoundErrorWithCause("package", id, err)
	}

	p, ok := e.state.findArchived(parcelID)
	if !ok {
		return parcel.Parcel{}, errs.NewObjectNotFoundError("package", id)
	}
	return p, nil
}

// DescribeSystem renders one line per drone followed by the queue and mission counts.
// A flying drone line ends with the description of its parcel.
func (e *Engine) DescribeSystem() string {
	var b strings.Builder
	b.WriteString("Current system state:\n")

	for _, d := range e.state.fleet {
		b.WriteString(e.describeDrone(d))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nPending packages: %d\n", len(e.state.pending))
	fmt.Fprintf(&b, "Planned missions: %d\n", len(e.state.active))
	fmt.Fprintf(&b, "Completed missions: %d\n", len(e.state.completed))
	return b.String()
}

// describeDrone appends the carried parcel to the drone description.
func (e *Engine) describeDrone(d *drone.Drone) string {
	line := d.Description()
	if cargo := d.Cargo(); cargo != nil {
		if p, ok := e.state.findArchived(cargo.ParcelID); ok {
			line += ", package: " + p.Description()
		}
	}
	return line
}

// Statistics counts drones by state, missions and queued parcels.
func (e *Engine) Statistics() Statistics {
	stats := Statistics{
		Drones:            len(e.state.fleet),
		ActiveMissions:    len(e.state.active),
		CompletedMissions: len(e.state.completed),
		PendingParcels:    len(e.state.pending),
	}

	for _, d := range e.state.fleet {
		if d.IsAvailable() {
			stats.AvailableDrones++
		} else {
			stats.FlyingDrones++
		}
	}
	return stats
}

// PopNotification removes and returns the newest notification.
// When the log is empty it returns EmptyNotification and false.
func (e *Engine) PopNotification() (string, bool) {
	message, ok := e.notifications.Pop()
	if !ok {
		return EmptyNotification, false
	}
	return message, true
}

// Generation identifies the scenario currently loaded. It changes on every Load.
func (e *Engine) Generation() kernel.UUID {
	return e.state.generation
}

// Drones returns copies of the fleet, in fleet order.
func (e *Engine) Drones() []*drone.Drone {
	out := make([]*drone.Drone, 0, len(e.state.fleet))
	for _, d := range e.state.fleet {
		out = append(out, d.Clone())
	}
	return out
}

// Pending returns the queued parcels, front first.
func (e *Engine) Pending() []parcel.Parcel {
	return append([]parcel.Parcel(nil), e.state.pending...)
}

// ActiveMissions returns copies of the planned and in-progress missions, in planning order.
func (e *Engine) ActiveMissions() []*mission.Mission {
	return cloneMissions(e.state.active)
}

// CompletedMissions returns copies of the completed log, oldest first.
func (e *Engine) CompletedMissions() []*mission.Mission {
	return cloneMissions(e.state.completed)
}

func cloneMissions(missions []*mission.Mission) []*mission.Mission {
	out := make([]*mission.Mission, 0, len(missions))
	for _, m := range missions {
		out = append(out, m.Clone())
	}
	return out
}

func (e *Engine) verify(op string) {
	if err := e.state.checkInvariants(); err != nil {
		e.violated(op, err)
	}
}

func (e *Engine) violated(op string, err error) {
	e.logger.ErrorContext(context.Background(), "engine invariant violated", "op", op, "error", err)
	panic(&ContractViolation{Op: op, Err: err})
}
