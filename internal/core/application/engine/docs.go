// Package engine implements the dispatch engine of the drone fleet.
//
// The engine owns the whole mutable state of a scenario:
//   - the fleet, in load order
//   - the FIFO queue of parcels waiting for a drone
//   - the active missions, in planning order
//   - the append-only log of completed missions
//   - the append-only archive of every parcel loaded
//   - the notification log, popped newest first
//
// # Commands
//
// Load replaces the scenario. PlanMissions matches queued parcels to drones,
// LaunchNextMission and CompleteCurrentMission advance one mission each.
// Operational conditions such as "no drone available" are reported through
// notifications and return values, never through errors.
//
// # Concurrency
//
// Engine is not safe for concurrent use. Callers that share it between
// goroutines go through a Runner, which serialises every call.
//
// # Contract violations
//
// Entity errors raised from inside a command mean the engine broke its own
// invariants. The engine panics with a *ContractViolation in that case.
package engine
