package pricing

import "github.com/bedandhome/pedidos/internal/order"

// Paying by credit card adds a fixed 8% on top of the subtotal.
const creditCardFactor = 1.08

// ComputeTotal derives an order total from its lines and payment method.
// It is pure; the result is stored on the order at intake time and is not
// re-derived afterwards.
func ComputeTotal(items []order.Item, method order.PaymentMethod) float64 {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Subtotal()
	}
	if method == order.PayCreditCard {
		return subtotal * creditCardFactor
	}
	return subtotal
}
