// Package kernel provides the shared value objects of the drone fleet domain.
//
// The package includes:
//   - ID: The positive integer identity of drones, parcels and missions
//   - Weight: A positive mass in kilograms, used for parcel weights and drone payloads
//   - UUID: A random identifier stamped on every loaded scenario
//
// Every value object embeds a guard.ConstructorGuard so that zero values are
// rejected by Validate. Values are immutable and safe to copy.
package kernel
