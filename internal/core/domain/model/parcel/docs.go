// Package parcel provides the Parcel value object: one delivery request loaded
// from a scenario.
//
// Key business rules:
//   - A parcel has a positive identifier, a positive weight and a non-empty destination
//   - A parcel never changes after construction
//   - The dispatch engine keeps every loaded parcel in its archive, so a parcel can be
//     looked up by identifier after it has left the pending queue
package parcel
