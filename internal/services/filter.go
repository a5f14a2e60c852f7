package services

import (
	"strings"

	"github.com/google/uuid"
	"storefront-service/internal/models"
)

// ListProductsRequest is a validated storefront listing query
type ListProductsRequest struct {
	Page   int
	Limit  int
	SortBy SortKey

	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
	ProductListID *uuid.UUID

	Vendor       string
	Gender       models.Gender
	Type         string
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
	Colors       []string
	Sizes        []string
	Availability models.AvailabilityBand
}

// ResolveScope picks the most specific hierarchy level present:
// product list, then sub-category, then category
func ResolveScope(categoryID, subCategoryID, productListID *uuid.UUID) models.CatalogScope {
	switch {
	case productListID != nil:
		return models.CatalogScope{Level: models.ScopeProductList, ID: *productListID}
	case subCategoryID != nil:
		return models.CatalogScope{Level: models.ScopeSubCategory, ID: *subCategoryID}
	case categoryID != nil:
		return models.CatalogScope{Level: models.ScopeCategory, ID: *categoryID}
	default:
		return models.CatalogScope{Level: models.ScopeNone}
	}
}

// CompileFilter turns a listing request into a product predicate. Only
// published products are ever matched.
func CompileFilter(req ListProductsRequest) models.ProductFilter {
	filter := models.ProductFilter{
		Status:   models.ProductStatusPublished,
		Scope:    ResolveScope(req.CategoryID, req.SubCategoryID, req.ProductListID),
		Vendor:   strings.TrimSpace(req.Vendor),
		Gender:   req.Gender,
		Type:     strings.TrimSpace(req.Type),
		Search:   strings.TrimSpace(req.Search),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Variant: models.VariantMatch{
			Colors: compactValues(req.Colors),
			Sizes:  compactValues(req.Sizes),
		},
	}

	if req.Availability != "" {
		if quantity, ok := QuantityRangeFor(req.Availability); ok {
			filter.Variant.Quantity = &quantity
		}
	}

	return filter
}

// SplitList splits a comma separated query value
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return compactValues(strings.Split(raw, ","))
}

// compactValues trims values and drops blanks and duplicates
func compactValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
