package services

import "storefront-service/internal/models"

// SortKey is a storefront listing order
type SortKey string

const (
	SortFeatured    SortKey = "featured"
	SortBestSelling SortKey = "best-selling"
	SortNameAsc     SortKey = "a-z"
	SortNameDesc    SortKey = "z-a"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortDateOld     SortKey = "date-old"
	SortDateNew     SortKey = "date-new"
)

var sortRules = map[SortKey]models.SortRule{
	SortFeatured:    {Field: models.SortByViewCount, Descending: true},
	SortBestSelling: {Field: models.SortByBestSelling, Descending: true},
	SortNameAsc:     {Field: models.SortByName},
	SortNameDesc:    {Field: models.SortByName, Descending: true},
	SortPriceLow:    {Field: models.SortByBasePrice},
	SortPriceHigh:   {Field: models.SortByBasePrice, Descending: true},
	SortDateOld:     {Field: models.SortByCreatedAt},
	SortDateNew:     {Field: models.SortByCreatedAt, Descending: true},
}

// ResolveSort maps a sort key to its ordering rule. Unknown or empty keys
// order as featured.
func ResolveSort(key SortKey) models.SortRule {
	if rule, ok := sortRules[key]; ok {
		return rule
	}
	return sortRules[SortFeatured]
}
