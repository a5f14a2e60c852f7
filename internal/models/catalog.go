package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductStatus represents the publication status of a product
type ProductStatus string

const (
	ProductStatusPublished   ProductStatus = "PUBLISHED"
	ProductStatusUnpublished ProductStatus = "UNPUBLISHED"
	ProductStatusDraft       ProductStatus = "DRAFT"
)

// Gender represents the audience a product is filed under
type Gender string

const (
	GenderMen    Gender = "MEN"
	GenderWomen  Gender = "WOMEN"
	GenderKids   Gender = "KIDS"
	GenderUnisex Gender = "UNISEX"
)

// Valid reports whether g is one of the known genders
func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderKids, GenderUnisex:
		return true
	}
	return false
}

// Category is the top level of the catalog hierarchy
type Category struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	NameEn        string        `json:"nameEn" gorm:"not null"`
	NameAr        string        `json:"nameAr" gorm:"not null"`
	Icon          *string       `json:"icon,omitempty"`
	Status        bool          `json:"status" gorm:"default:true;index"`
	Order         int           `json:"order" gorm:"column:position;default:0"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	SubCategories []SubCategory `json:"subCategories,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// SubCategory belongs to exactly one Category
type SubCategory struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID   uuid.UUID     `json:"categoryId" gorm:"type:uuid;not null;index"`
	NameEn       string        `json:"nameEn" gorm:"not null"`
	NameAr       string        `json:"nameAr" gorm:"not null"`
	Status       bool          `json:"status" gorm:"default:true"`
	Order        int           `json:"order" gorm:"column:position;default:0"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Category     *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ProductLists []ProductList `json:"productLists,omitempty" gorm:"foreignKey:SubCategoryID"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ProductList is the leaf of the category hierarchy that products are filed under
type ProductList struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	SubCategoryID uuid.UUID    `json:"subCategoryId" gorm:"type:uuid;not null;index"`
	NameEn        string       `json:"nameEn" gorm:"not null"`
	NameAr        string       `json:"nameAr" gorm:"not null"`
	Status        bool         `json:"status" gorm:"default:true"`
	Order         int          `json:"order" gorm:"column:position;default:0"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	SubCategory   *SubCategory `json:"subCategory,omitempty" gorm:"foreignKey:SubCategoryID"`
}

func (ProductList) TableName() string {
	return "product_lists"
}

func (p *ProductList) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Product is a sellable catalog item. Stock lives on its variants.
type Product struct {
	ID                 uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	SKU                string                      `json:"sku" gorm:"uniqueIndex;not null"`
	NameEn             string                      `json:"nameEn" gorm:"not null"`
	NameAr             string                      `json:"nameAr" gorm:"not null"`
	DescriptionEn      string                      `json:"descriptionEn"`
	DescriptionAr      string                      `json:"descriptionAr"`
	DetailsEn          datatypes.JSONSlice[string] `json:"detailsEn"`
	DetailsAr          datatypes.JSONSlice[string] `json:"detailsAr"`
	BasePrice          Decimal                     `json:"basePrice" gorm:"type:decimal(10,2);not null;index"`
	DiscountPercentage Decimal                     `json:"discountPercentage" gorm:"type:decimal(5,2);default:0"`
	Vendor             string                      `json:"vendor" gorm:"index"`
	Gender             Gender                      `json:"gender" gorm:"type:varchar(16);index"`
	Type               string                      `json:"type" gorm:"index"`
	Status             ProductStatus               `json:"status" gorm:"type:varchar(16);default:'DRAFT';index"`
	ViewCount          int64                       `json:"viewCount" gorm:"default:0"`
	SizeChartURL       *string                     `json:"sizeChartUrl,omitempty"`
	ProductListID      uuid.UUID                   `json:"productListId" gorm:"type:uuid;not null;index"`
	CreatedAt          time.Time                   `json:"createdAt" gorm:"index"`
	UpdatedAt          time.Time                   `json:"updatedAt"`

	ProductList *ProductList     `json:"productList,omitempty" gorm:"foreignKey:ProductListID"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	Images      []ProductImage   `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductVariant is one color/size combination with its own stock quantity
type ProductVariant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	Color     string    `json:"color" gorm:"index"`
	Size      string    `json:"size" gorm:"index"`
	Quantity  int       `json:"quantity" gorm:"default:0"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// ProductImage is an ordered product image; order 0 is the cover
type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:position;default:0"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// FeaturedConfig controls which products appear in the homepage featured strip
type FeaturedConfig struct {
	ID               uuid.UUID                      `json:"id" gorm:"type:uuid;primaryKey"`
	AutoChoose       bool                           `json:"autoChoose" gorm:"default:false"`
	SelectedProducts datatypes.JSONSlice[uuid.UUID] `json:"selectedProducts"`
	UpdatedAt        time.Time                      `json:"updatedAt"`
}

func (FeaturedConfig) TableName() string {
	return "featured_configs"
}

func (f *FeaturedConfig) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// OrderItem is the order subsystem's line item, read here only to rank best sellers
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"orderId" gorm:"type:uuid;index"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (o *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
