package calculator

import "math"

// Pricing for the three selling options, in whole Australian dollars.
// The traditional-agent figures are a fixed industry baseline estimate,
// not a quote.
const (
	SelfManagedFee     = 2495
	FullServiceBaseFee = 2495
	FullServiceRate    = 0.007
	TraditionalBaseFee = 2500
	TraditionalRate    = 0.025
)

// Slider bounds for the property price input.
const (
	MinPropertyPrice = 200000
	MaxPropertyPrice = 3000000
	PriceStep        = 50000
)

// Breakdown holds the three comparative cost projections for a property price
// and the savings of each package against a traditional agent.
type Breakdown struct {
	PropertyPrice        int `json:"property_price"`
	SelfManagedCost      int `json:"self_managed_cost"`
	FullServiceCost      int `json:"full_service_cost"`
	TraditionalAgentCost int `json:"traditional_agent_cost"`
	SelfManagedSavings   int `json:"self_managed_savings"`
	FullServiceSavings   int `json:"full_service_savings"`
}

// Savings computes the cost breakdown for the given property price.
// Commission components round half-up to the nearest dollar.
func Savings(propertyPrice int) Breakdown {
	fullService := FullServiceBaseFee + roundDollars(float64(propertyPrice)*FullServiceRate)
	traditional := TraditionalBaseFee + roundDollars(float64(propertyPrice)*TraditionalRate)

	return Breakdown{
		PropertyPrice:        propertyPrice,
		SelfManagedCost:      SelfManagedFee,
		FullServiceCost:      fullService,
		TraditionalAgentCost: traditional,
		SelfManagedSavings:   traditional - SelfManagedFee,
		FullServiceSavings:   traditional - fullService,
	}
}

// InRange reports whether the price falls within the slider bounds.
func InRange(propertyPrice int) bool {
	return propertyPrice >= MinPropertyPrice && propertyPrice <= MaxPropertyPrice
}

func roundDollars(v float64) int {
	return int(math.Round(v))
}
