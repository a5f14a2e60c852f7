package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

// CatalogService is the catalog read surface the handlers depend on
type CatalogService interface {
	ListProducts(ctx context.Context, req services.ListProductsRequest) (*models.ProductPage, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error)
	GetFeaturedProducts(ctx context.Context) ([]models.ProductView, error)
	GetFilterOptions(ctx context.Context, categoryID, subCategoryID, productListID *uuid.UUID) (*models.FilterOptions, error)
	GetCategoryTree(ctx context.Context) ([]models.Category, error)
	ExportProducts(ctx context.Context, req services.ListProductsRequest, maxRows int) ([]models.ProductView, error)
}

var _ CatalogService = (*services.CatalogService)(nil)

type CatalogHandler struct {
	service       CatalogService
	exportMaxRows int
	logger        *logrus.Entry
}

func NewCatalogHandler(service CatalogService, exportMaxRows int, logger *logrus.Entry) *CatalogHandler {
	if exportMaxRows <= 0 {
		exportMaxRows = 5000
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CatalogHandler{
		service:       service,
		exportMaxRows: exportMaxRows,
		logger:        logger,
	}
}

// GetProducts lists published products
// @Summary List storefront products
// @Description Filtered, sorted and paginated list of published products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param sortBy query string false "featured, best-selling, a-z, z-a, price-low, price-high, date-old, date-new"
// @Param category query string false "Category ID"
// @Param subCategory query string false "Sub-category ID"
// @Param productList query string false "Product list ID"
// @Param availability query string false "in-stock, low-stock, out-of-stock"
// @Success 200 {object} models.ProductListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /storefront/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	req, err := parseListRequest(c)
	if err != nil {
		h.handleError(c, err, "Failed to retrieve products")
		return
	}

	page, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    *page,
	})
}

// GetProduct returns a single published product and records the view
// @Summary Get storefront product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Malformed ids cannot exist, so they get the same answer as unknown ones
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.handleError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{
		Success: true,
		Data:    product,
	})
}

// GetFeaturedProducts returns the homepage featured products
// @Summary Featured products
// @Tags products
// @Produce json
// @Success 200 {object} models.FeaturedProductsResponse
// @Router /storefront/products/featured [get]
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.service.GetFeaturedProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to retrieve featured products")
		return
	}

	c.JSON(http.StatusOK, models.FeaturedProductsResponse{
		Success: true,
		Data:    products,
	})
}

// GetFilterOptions returns the filter values available in a scope
func (h *CatalogHandler) GetFilterOptions(c *gin.Context) {
	categoryID, subCategoryID, productListID, err := parseScope(c)
	if err != nil {
		h.handleError(c, err, "Failed to retrieve filters")
		return
	}

	options, err := h.service.GetFilterOptions(c.Request.Context(), categoryID, subCategoryID, productListID)
	if err != nil {
		h.handleError(c, err, "Failed to retrieve filters")
		return
	}

	c.JSON(http.StatusOK, models.FilterOptionsResponse{
		Success: true,
		Data:    options,
	})
}

// GetCategories returns the active category tree
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategoryTree(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, models.CategoryTreeResponse{
		Success: true,
		Data:    categories,
	})
}

// handleError maps service errors to the JSON error envelope
func (h *CatalogHandler) handleError(c *gin.Context, err error, message string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondValidationError(c, validationErr)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "")
	default:
		h.logger.WithError(err).WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).Error(message)
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", message, "")
	}
}
