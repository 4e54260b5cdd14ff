// Package parcel contains the Parcel aggregate and its reference data.
//
// A Parcel moves through a two-stage costing lifecycle: it is registered
// uncosted, and a consumer later computes and sets the shipping cost exactly
// once. Independently of costing, a shipping company may claim the parcel on a
// first-come basis; the claim transitions at most once from unassigned to
// assigned and is never reverted.
//
// The aggregate enforces:
//   - name is required, weight is positive, declared value is non-negative
//   - the shipping cost is set at most once and never reverts
//   - the company assignment happens at most once
//   - construction only through NewParcel or RestoreParcel
package parcel
