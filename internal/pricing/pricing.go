// Package pricing computes order totals from a cart snapshot. All
// amounts are int64 minor currency units and summation is exact
// integer arithmetic; no floats enter the money path.
package pricing

import "github.com/oparantho/saakwa-laundry-platform/internal/models"

const bpsDenominator = 10000

// Policy holds the fee and savings rates in basis points (10% = 1000).
// Both have changed between deployments and come from config.
type Policy struct {
	ServiceFeeBps int64
	SavingsBps    int64
}

func DefaultPolicy() Policy {
	return Policy{
		ServiceFeeBps: 1000,
		SavingsBps:    2500,
	}
}

// Quote is the full price breakdown shown at checkout. Savings is a
// marketing comparison figure and is never subtracted from Total.
type Quote struct {
	Subtotal   int64 `json:"subtotal"`
	ServiceFee int64 `json:"service_fee"`
	Savings    int64 `json:"savings"`
	Total      int64 `json:"total"`
	TotalItems int   `json:"total_items"`
}

// Subtotal sums unit price times quantity over every line.
func Subtotal(cart *models.Cart) int64 {
	var sum int64
	for _, line := range cart.Lines {
		sum += line.LineTotal()
	}

	return sum
}

// roundBps applies a basis-point rate with round-half-up to the
// nearest currency unit.
func roundBps(amount, bps int64) int64 {
	return (amount*bps + bpsDenominator/2) / bpsDenominator
}

func ServiceFee(subtotal int64, p Policy) int64 {
	return roundBps(subtotal, p.ServiceFeeBps)
}

func SavingsEstimate(subtotal int64, p Policy) int64 {
	return roundBps(subtotal, p.SavingsBps)
}

// Compute prices a cart snapshot. An empty cart quotes all zeros; the
// empty-cart gate lives in the booking assembler, not here.
func Compute(cart *models.Cart, p Policy) Quote {
	subtotal := Subtotal(cart)
	fee := ServiceFee(subtotal, p)

	return Quote{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Savings:    SavingsEstimate(subtotal, p),
		Total:      subtotal + fee,
		TotalItems: cart.TotalItems(),
	}
}
