package ordering

import "math"

const (
	// FlatShippingFee applies to every order regardless of size.
	FlatShippingFee = 5.99

	// TaxRate is applied to the subtotal only, never to shipping.
	TaxRate = 0.10
)

type Line struct {
	UnitPrice float64
	Quantity  int
}

type Totals struct {
	Subtotal    float64
	ShippingFee float64
	Tax         float64
	Total       float64
}

// Compute derives order totals from price-snapshot lines. All money
// fields come back rounded to two decimal places.
func Compute(lines []Line) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}

	subtotal = Round2(subtotal)
	tax := Round2(subtotal * TaxRate)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: FlatShippingFee,
		Tax:         tax,
		Total:       Round2(subtotal + FlatShippingFee + tax),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
