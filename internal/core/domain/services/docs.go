// Package services provides domain services that coordinate several entities of
// the drone fleet domain.
//
// The package includes:
//   - MissionDispatcher: Binds a parcel to the first drone of the fleet able to carry it
//     and produces the planned mission
//
// Services are stateless; the fleet and the parcel are owned by the caller.
package services
