package services

import "storefront-service/internal/models"

// LowStockThreshold is the highest quantity still labelled low-stock
const LowStockThreshold = 10

type availabilityBand struct {
	band     models.AvailabilityBand
	quantity models.QuantityRange
}

var (
	zeroStock         = 0
	lowStockCeil      = LowStockThreshold
	availabilityBands = []availabilityBand{
		{band: models.AvailabilityOutOfStock, quantity: models.QuantityRange{Min: 0, Max: &zeroStock}},
		{band: models.AvailabilityLowStock, quantity: models.QuantityRange{Min: 1, Max: &lowStockCeil}},
		{band: models.AvailabilityInStock, quantity: models.QuantityRange{Min: LowStockThreshold + 1}},
	}
)

// AvailabilityFor returns the band a stock quantity falls in
func AvailabilityFor(quantity int) models.AvailabilityBand {
	for _, b := range availabilityBands {
		if b.quantity.Contains(quantity) {
			return b.band
		}
	}
	return models.AvailabilityOutOfStock
}

// QuantityRangeFor returns the quantity range of a band. The label applies the
// range to total stock while the listing filter applies it to one variant, so
// stock split across variants can be labelled in-stock yet match low-stock.
func QuantityRangeFor(band models.AvailabilityBand) (models.QuantityRange, bool) {
	for _, b := range availabilityBands {
		if b.band == band {
			return b.quantity, true
		}
	}
	return models.QuantityRange{}, false
}

// StockSummary is the stock state derived from a product's variants
type StockSummary struct {
	TotalStock   int
	Colors       []string
	Sizes        []string
	Availability models.AvailabilityBand
}

// AggregateStock sums variant quantities and collects distinct colors and
// sizes in first-seen order
func AggregateStock(variants []models.ProductVariant) StockSummary {
	summary := StockSummary{
		Colors: []string{},
		Sizes:  []string{},
	}
	seenColors := make(map[string]bool)
	seenSizes := make(map[string]bool)

	for _, v := range variants {
		summary.TotalStock += v.Quantity
		if !seenColors[v.Color] {
			seenColors[v.Color] = true
			summary.Colors = append(summary.Colors, v.Color)
		}
		if !seenSizes[v.Size] {
			seenSizes[v.Size] = true
			summary.Sizes = append(summary.Sizes, v.Size)
		}
	}

	summary.Availability = AvailabilityFor(summary.TotalStock)
	return summary
}
