package handlers

import "github.com/gin-gonic/gin"

// RegisterStorefrontRoutes mounts the public catalog and offer endpoints.
// claimMiddleware runs in front of the offer claim only.
func RegisterStorefrontRoutes(storefront *gin.RouterGroup, catalog *CatalogHandler, offers *OfferHandler, claimMiddleware ...gin.HandlerFunc) {
	products := storefront.Group("/products")
	{
		products.GET("", catalog.GetProducts)
		products.GET("/featured", catalog.GetFeaturedProducts)
		products.GET("/filters", catalog.GetFilterOptions)
		products.GET("/export", catalog.ExportProducts)
		products.GET("/:id", catalog.GetProduct)
	}

	storefront.GET("/categories", catalog.GetCategories)

	offerRoutes := storefront.Group("/offers")
	{
		offerRoutes.GET("/active", offers.GetActiveOffer)
		offerRoutes.POST("/claim", append(claimMiddleware, offers.ClaimOffer)...)
	}
}
