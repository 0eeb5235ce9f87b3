// Package mission provides the Mission entity, the link between one drone and one
// parcel, and its lifecycle.
//
// The lifecycle is a fixed transition table:
//
//	PLANNED ──launch──▶ IN_PROGRESS ──complete──▶ COMPLETED
//
// Any other move (skipping a step, going backwards, re-entering the same state) is
// rejected and leaves the mission untouched. The table is evaluated with
// github.com/looplab/fsm.
//
// Two missions are equal when they link the same drone to the same parcel,
// whatever their state.
package mission
