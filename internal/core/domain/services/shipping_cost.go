package services

import (
	"fmt"
	"math"
)

// NotCalculatedDisplay is the sentinel shown for parcels whose shipping cost
// has not been computed yet.
const NotCalculatedDisplay = "not calculated yet"

// ShippingCostCalculator is a domain service that turns a parcel's physical
// attributes and a currency rate into a shipping cost in rubles.
//
// The tariff is:
//
//	cost = (weight_kg * 0.5 + declared_value_usd * 0.01) * usd_to_rub_rate
//
// rounded to two decimal places. The calculation is deterministic and performs
// no I/O; the caller supplies the rate.
type ShippingCostCalculator struct{}

// NewShippingCostCalculator creates a new ShippingCostCalculator instance.
func NewShippingCostCalculator() ShippingCostCalculator {
	return ShippingCostCalculator{}
}

// Calculate returns the shipping cost for the given weight (kg), declared
// value (USD) and USD→RUB rate, rounded to 2 decimal places.
func (c ShippingCostCalculator) Calculate(weight, priceUSD, rate float64) float64 {
	cost := (weight*0.5 + priceUSD*0.01) * rate
	return math.Round(cost*100) / 100
}

// FormatDisplay renders a shipping cost for presentation.
// A nil cost yields the fixed NotCalculatedDisplay sentinel; otherwise the
// amount is formatted with two decimals and a currency suffix.
func FormatDisplay(cost *float64) string {
	if cost == nil {
		return NotCalculatedDisplay
	}
	return fmt.Sprintf("%.2f RUB", *cost)
}
