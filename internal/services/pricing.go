package services

import "math"

// pricePrecision matches the decimal(10,2) price columns
const pricePrecision = 100

// FinalPrice applies a product's own discount percentage to its base price.
// The result is rounded to cents and never exceeds basePrice. Discount bounds
// are enforced when products are written, not here.
func FinalPrice(basePrice, discountPercentage float64) float64 {
	price := basePrice * (1 - discountPercentage/100)
	price = math.Round(price*pricePrecision) / pricePrecision
	if price > basePrice {
		return basePrice
	}
	return price
}
