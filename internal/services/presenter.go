package services

import (
	"sort"

	"storefront-service/internal/models"
)

// PresentProduct builds the public view of a product from its loaded
// variants, images and ancestry
func PresentProduct(p *models.Product) models.ProductView {
	stock := AggregateStock(p.Variants)
	basePrice := p.BasePrice.Float64()
	discount := p.DiscountPercentage.Float64()

	view := models.ProductView{
		ID:                 p.ID,
		SKU:                p.SKU,
		NameEn:             p.NameEn,
		NameAr:             p.NameAr,
		DescriptionEn:      p.DescriptionEn,
		DescriptionAr:      p.DescriptionAr,
		DetailsEn:          nonNilStrings(p.DetailsEn),
		DetailsAr:          nonNilStrings(p.DetailsAr),
		BasePrice:          basePrice,
		DiscountPercentage: discount,
		FinalPrice:         FinalPrice(basePrice, discount),
		Vendor:             p.Vendor,
		Gender:             p.Gender,
		Type:               p.Type,
		Status:             p.Status,
		SizeChartURL:       p.SizeChartURL,
		Images:             presentImages(p.Images),
		Colors:             stock.Colors,
		Sizes:              stock.Sizes,
		Availability:       stock.Availability,
		TotalStock:         stock.TotalStock,
		ViewCount:          p.ViewCount,
		CreatedAt:          p.CreatedAt,
	}

	// Ancestry is all or nothing
	if list := p.ProductList; list != nil {
		if sub := list.SubCategory; sub != nil {
			if cat := sub.Category; cat != nil {
				view.ProductList = &models.AncestorRef{ID: list.ID, NameEn: list.NameEn, NameAr: list.NameAr}
				view.SubCategory = &models.AncestorRef{ID: sub.ID, NameEn: sub.NameEn, NameAr: sub.NameAr}
				view.Category = &models.AncestorRef{ID: cat.ID, NameEn: cat.NameEn, NameAr: cat.NameAr}
			}
		}
	}

	return view
}

// PresentProducts presents each product in order
func PresentProducts(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, PresentProduct(&products[i]))
	}
	return views
}

func presentImages(images []models.ProductImage) []models.ImageView {
	views := make([]models.ImageView, 0, len(images))
	for _, img := range images {
		views = append(views, models.ImageView{ID: img.ID, URL: img.URL, Order: img.Order})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Order < views[j].Order
	})
	return views
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
