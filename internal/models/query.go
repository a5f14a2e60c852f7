package models

import "github.com/google/uuid"

// ScopeLevel is the level of the category hierarchy a listing is restricted to
type ScopeLevel string

const (
	ScopeNone        ScopeLevel = ""
	ScopeCategory    ScopeLevel = "category"
	ScopeSubCategory ScopeLevel = "subCategory"
	ScopeProductList ScopeLevel = "productList"
)

// CatalogScope restricts products to one node of the hierarchy
type CatalogScope struct {
	Level ScopeLevel `json:"level"`
	ID    uuid.UUID  `json:"id"`
}

// QuantityRange is an inclusive variant quantity range; a nil Max is unbounded
type QuantityRange struct {
	Min int  `json:"min"`
	Max *int `json:"max,omitempty"`
}

// Contains reports whether q lies in the range
func (r QuantityRange) Contains(q int) bool {
	if q < r.Min {
		return false
	}
	return r.Max == nil || q <= *r.Max
}

// VariantMatch holds conditions that must all hold on the same variant row
type VariantMatch struct {
	Colors   []string       `json:"colors,omitempty"`
	Sizes    []string       `json:"sizes,omitempty"`
	Quantity *QuantityRange `json:"quantity,omitempty"`
}

// IsEmpty reports whether the match places no condition on variants
func (m VariantMatch) IsEmpty() bool {
	return len(m.Colors) == 0 && len(m.Sizes) == 0 && m.Quantity == nil
}

// ProductFilter is a compiled product predicate
type ProductFilter struct {
	Status   ProductStatus `json:"status"`
	Scope    CatalogScope  `json:"scope"`
	Vendor   string        `json:"vendor,omitempty"`
	Gender   Gender        `json:"gender,omitempty"`
	Type     string        `json:"type,omitempty"`
	Search   string        `json:"search,omitempty"`
	MinPrice *float64      `json:"minPrice,omitempty"`
	MaxPrice *float64      `json:"maxPrice,omitempty"`
	Variant  VariantMatch  `json:"variant"`
}

// SortField is a product ordering column
type SortField string

const (
	SortByViewCount   SortField = "view_count"
	SortByBestSelling SortField = "best_selling"
	SortByName        SortField = "name_en"
	SortByBasePrice   SortField = "base_price"
	SortByCreatedAt   SortField = "created_at"
)

// SortRule orders products by Field, then by id in the same direction
type SortRule struct {
	Field      SortField
	Descending bool
}

// OfferClaimNotification is sent to a shopper who claimed the active offer
type OfferClaimNotification struct {
	Email       string
	Locale      string
	OfferID     string
	Headline    string
	Amount      float64
	AmountLabel string
	VoucherCode string
}
