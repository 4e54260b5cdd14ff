// Package services provides domain services for the parcel quoting system.
// It implements business calculations that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - ShippingCostCalculator: the tariff turning weight, declared value and a
//     currency rate into a shipping cost
//   - FormatDisplay: presentation formatting for computed (or pending) costs
//
// Domain services are pure: they perform no I/O and hold no state.
package services
