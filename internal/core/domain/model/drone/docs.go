// Package drone provides the Drone entity: one unit of the delivery fleet.
//
// Key business rules:
//   - A drone has a positive identifier, a non-empty model name and a positive maximum payload
//   - A drone is either AVAILABLE with nothing on board or FLYING with exactly one parcel
//   - A drone only takes a parcel whose weight does not exceed its maximum payload
//   - The drone keeps a non-owning reference (identifier and weight) to the parcel it carries;
//     the parcel itself lives in the dispatch engine archive
//
// Every mutation re-checks the invariants above and reports ErrInvariantViolated if
// they no longer hold, which signals a programming error rather than bad input.
package drone
