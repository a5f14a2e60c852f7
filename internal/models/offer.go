package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferType is the kind of discount an offer grants
type OfferType string

const (
	OfferTypePercentage   OfferType = "PERCENTAGE"
	OfferTypeFixedAmount  OfferType = "FIXED_AMOUNT"
	OfferTypeBundle       OfferType = "BUNDLE"
	OfferTypeFreeShipping OfferType = "FREE_SHIPPING"
)

// OfferScope is the part of the catalog an offer applies to
type OfferScope string

const (
	OfferScopeAll         OfferScope = "ALL"
	OfferScopeCategory    OfferScope = "CATEGORY"
	OfferScopeSubCategory OfferScope = "SUB_CATEGORY"
	OfferScopeProductList OfferScope = "PRODUCT_LIST"
	OfferScopeProductType OfferScope = "PRODUCT_TYPE"
)

// Offer is a time-windowed promotion. Whether it is active is derived from
// Status and the date window, never stored.
type Offer struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	NameEn          string     `json:"nameEn" gorm:"not null"`
	NameAr          string     `json:"nameAr" gorm:"not null"`
	DescriptionEn   *string    `json:"descriptionEn,omitempty"`
	DescriptionAr   *string    `json:"descriptionAr,omitempty"`
	Code            string     `json:"code" gorm:"uniqueIndex;not null"`
	Type            OfferType  `json:"type" gorm:"type:varchar(20);not null"`
	DiscountValue   Decimal    `json:"discountValue" gorm:"type:decimal(10,2);default:0"`
	MinCartValue    *Decimal   `json:"minCartValue,omitempty" gorm:"type:decimal(10,2)"`
	MaxDiscount     *Decimal   `json:"maxDiscount,omitempty" gorm:"type:decimal(10,2)"`
	ApplyTo         OfferScope `json:"applyTo" gorm:"type:varchar(20);default:'ALL'"`
	TargetID        *string    `json:"targetId,omitempty"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	StartDate       time.Time  `json:"startDate" gorm:"not null;index"`
	EndDate         time.Time  `json:"endDate" gorm:"not null;index"`
	StartTime       *string    `json:"startTime,omitempty"`
	EndTime         *string    `json:"endTime,omitempty"`
	TotalUsageLimit *int       `json:"totalUsageLimit,omitempty"`
	PerUserLimit    *int       `json:"perUserLimit,omitempty"`
	Status          bool       `json:"status" gorm:"index"`
	CreatedAt       time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Offer) TableName() string {
	return "offers"
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
