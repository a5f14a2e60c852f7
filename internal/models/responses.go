package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityBand is the stock band shown on a product and used to filter listings
type AvailabilityBand string

const (
	AvailabilityInStock    AvailabilityBand = "in-stock"
	AvailabilityLowStock   AvailabilityBand = "low-stock"
	AvailabilityOutOfStock AvailabilityBand = "out-of-stock"
)

// Valid reports whether b is one of the known bands
func (b AvailabilityBand) Valid() bool {
	switch b {
	case AvailabilityInStock, AvailabilityLowStock, AvailabilityOutOfStock:
		return true
	}
	return false
}

// ImageView is a product image as shown on the storefront
type ImageView struct {
	ID    uuid.UUID `json:"id"`
	URL   string    `json:"url"`
	Order int       `json:"order"`
}

// AncestorRef identifies one level of a product's category ancestry
type AncestorRef struct {
	ID     uuid.UUID `json:"id"`
	NameEn string    `json:"nameEn"`
	NameAr string    `json:"nameAr"`
}

// ProductView is the public representation of a product
type ProductView struct {
	ID                 uuid.UUID        `json:"id"`
	SKU                string           `json:"sku"`
	NameEn             string           `json:"nameEn"`
	NameAr             string           `json:"nameAr"`
	DescriptionEn      string           `json:"descriptionEn"`
	DescriptionAr      string           `json:"descriptionAr"`
	DetailsEn          []string         `json:"detailsEn"`
	DetailsAr          []string         `json:"detailsAr"`
	BasePrice          float64          `json:"basePrice"`
	DiscountPercentage float64          `json:"discountPercentage"`
	FinalPrice         float64          `json:"finalPrice"`
	Vendor             string           `json:"vendor"`
	Gender             Gender           `json:"gender"`
	Type               string           `json:"type"`
	Status             ProductStatus    `json:"status"`
	SizeChartURL       *string          `json:"sizeChartUrl,omitempty"`
	Images             []ImageView      `json:"images"`
	Colors             []string         `json:"colors"`
	Sizes              []string         `json:"sizes"`
	Availability       AvailabilityBand `json:"availability"`
	TotalStock         int              `json:"totalStock"`
	ViewCount          int64            `json:"viewCount"`
	CreatedAt          time.Time        `json:"createdAt"`
	Category           *AncestorRef     `json:"category,omitempty"`
	SubCategory        *AncestorRef     `json:"subCategory,omitempty"`
	ProductList        *AncestorRef     `json:"productList,omitempty"`
}

// PaginationInfo describes one page of a listing
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ProductPage struct {
	Products   []ProductView  `json:"products"`
	Pagination PaginationInfo `json:"pagination"`
}

type ProductListResponse struct {
	Success bool        `json:"success"`
	Data    ProductPage `json:"data"`
}

type ProductResponse struct {
	Success bool         `json:"success"`
	Data    *ProductView `json:"data"`
}

type FeaturedProductsResponse struct {
	Success bool          `json:"success"`
	Data    []ProductView `json:"data"`
}

// PriceRange is the min and max base price over a set of products
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions lists the values a shopper can filter the current scope by
type FilterOptions struct {
	Vendors    []string   `json:"vendors"`
	Types      []string   `json:"types"`
	Colors     []string   `json:"colors"`
	Sizes      []string   `json:"sizes"`
	PriceRange PriceRange `json:"priceRange"`
}

type FilterOptionsResponse struct {
	Success bool           `json:"success"`
	Data    *FilterOptions `json:"data"`
}

type CategoryTreeResponse struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
}

// OfferSummary is the active offer as rendered in the storefront popup
type OfferSummary struct {
	ID          uuid.UUID `json:"id"`
	Headline    string    `json:"headline"`
	SubHeadline string    `json:"subHeadline"`
	Amount      float64   `json:"amount"`
	AmountLabel string    `json:"amountLabel"`
	VoucherCode string    `json:"voucherCode"`
	ImageURL    *string   `json:"imageUrl"`
}

type ActiveOfferResponse struct {
	Success bool          `json:"success"`
	Data    *OfferSummary `json:"data"`
}

// ClaimOfferRequest is the body of an offer claim
type ClaimOfferRequest struct {
	Email  string `json:"email" binding:"required"`
	Locale string `json:"locale"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
