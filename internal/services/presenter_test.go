package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-service/internal/models"
)

func newTestProduct() *models.Product {
	category := &models.Category{ID: uuid.New(), NameEn: "Women", NameAr: "نساء"}
	subCategory := &models.SubCategory{ID: uuid.New(), CategoryID: category.ID, NameEn: "Shoes", NameAr: "أحذية", Category: category}
	productList := &models.ProductList{ID: uuid.New(), SubCategoryID: subCategory.ID, NameEn: "Sneakers", NameAr: "أحذية رياضية", SubCategory: subCategory}

	productID := uuid.New()
	return &models.Product{
		ID:                 productID,
		SKU:                "SNK-001",
		NameEn:             "Cloud Runner",
		NameAr:             "كلاود رانر",
		DetailsEn:          []string{"Mesh upper", "Rubber sole"},
		BasePrice:          1630,
		DiscountPercentage: 30,
		Vendor:             "Nike",
		Gender:             models.GenderWomen,
		Type:               "Sneakers",
		Status:             models.ProductStatusPublished,
		ViewCount:          42,
		ProductListID:      productList.ID,
		ProductList:        productList,
		CreatedAt:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Variants: []models.ProductVariant{
			{ProductID: productID, Color: "Black", Size: "EU-35", Quantity: 15},
			{ProductID: productID, Color: "Black", Size: "EU-36", Quantity: 12},
			{ProductID: productID, Color: "Pink", Size: "EU-35", Quantity: 10},
		},
		Images: []models.ProductImage{
			{ID: uuid.New(), ProductID: productID, URL: "/uploads/side.jpg", Order: 2},
			{ID: uuid.New(), ProductID: productID, URL: "/uploads/cover.jpg", Order: 0},
			{ID: uuid.New(), ProductID: productID, URL: "/uploads/top.jpg", Order: 1},
		},
	}
}

func TestPresentProduct(t *testing.T) {
	product := newTestProduct()

	view := PresentProduct(product)

	assert.Equal(t, product.ID, view.ID)
	assert.Equal(t, 1630.0, view.BasePrice)
	assert.Equal(t, 30.0, view.DiscountPercentage)
	assert.Equal(t, 1141.0, view.FinalPrice)
	assert.Equal(t, 37, view.TotalStock)
	assert.Equal(t, models.AvailabilityInStock, view.Availability)
	assert.Equal(t, []string{"Black", "Pink"}, view.Colors)
	assert.Equal(t, []string{"EU-35", "EU-36"}, view.Sizes)
	assert.Equal(t, int64(42), view.ViewCount)
	assert.Equal(t, []string{"Mesh upper", "Rubber sole"}, view.DetailsEn)
	assert.Equal(t, []string{}, view.DetailsAr)

	require.Len(t, view.Images, 3)
	assert.Equal(t, "/uploads/cover.jpg", view.Images[0].URL)
	assert.Equal(t, 0, view.Images[0].Order)
	assert.Equal(t, "/uploads/top.jpg", view.Images[1].URL)
	assert.Equal(t, 2, view.Images[2].Order)

	require.NotNil(t, view.Category)
	require.NotNil(t, view.SubCategory)
	require.NotNil(t, view.ProductList)
	assert.Equal(t, "Women", view.Category.NameEn)
	assert.Equal(t, "Shoes", view.SubCategory.NameEn)
	assert.Equal(t, "أحذية رياضية", view.ProductList.NameAr)
}

func TestPresentProduct_BrokenAncestryIsOmitted(t *testing.T) {
	product := newTestProduct()
	product.ProductList.SubCategory.Category = nil

	view := PresentProduct(product)

	assert.Nil(t, view.Category)
	assert.Nil(t, view.SubCategory)
	assert.Nil(t, view.ProductList)

	product.ProductList = nil
	view = PresentProduct(product)
	assert.Nil(t, view.ProductList)
}

func TestPresentProducts_KeepsOrder(t *testing.T) {
	first, second := newTestProduct(), newTestProduct()
	second.SKU = "SNK-002"

	views := PresentProducts([]models.Product{*first, *second})

	require.Len(t, views, 2)
	assert.Equal(t, "SNK-001", views[0].SKU)
	assert.Equal(t, "SNK-002", views[1].SKU)
	assert.NotNil(t, PresentProducts(nil))
}
