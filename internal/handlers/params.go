package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

// parseListRequest builds a typed listing request from query parameters
func parseListRequest(c *gin.Context) (services.ListProductsRequest, error) {
	req := services.ListProductsRequest{
		Page:   services.DefaultPage,
		Limit:  services.DefaultPageSize,
		SortBy: services.SortKey(strings.TrimSpace(c.Query("sortBy"))),
		Vendor: c.Query("vendor"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Colors: services.SplitList(c.Query("colors")),
		Sizes:  services.SplitList(c.Query("sizes")),
	}

	var err error
	if raw, ok := c.GetQuery("page"); ok {
		req.Page, err = strconv.Atoi(raw)
		if err != nil || req.Page < 1 {
			return req, services.NewValidationError("page", "page must be a positive integer")
		}
	}
	if raw, ok := c.GetQuery("limit"); ok {
		req.Limit, err = strconv.Atoi(raw)
		if err != nil || req.Limit < 1 || req.Limit > services.MaxPageSize {
			return req, services.NewValidationError("limit", "limit must be between 1 and 100")
		}
	}

	if req.CategoryID, req.SubCategoryID, req.ProductListID, err = parseScope(c); err != nil {
		return req, err
	}

	if raw := strings.TrimSpace(c.Query("gender")); raw != "" {
		req.Gender = models.Gender(strings.ToUpper(raw))
		if !req.Gender.Valid() {
			return req, services.NewValidationError("gender", "gender must be one of MEN, WOMEN, KIDS, UNISEX")
		}
	}

	if raw := strings.TrimSpace(c.Query("availability")); raw != "" {
		req.Availability = models.AvailabilityBand(strings.ToLower(raw))
		if !req.Availability.Valid() {
			return req, services.NewValidationError("availability", "availability must be one of in-stock, low-stock, out-of-stock")
		}
	}

	if req.MinPrice, err = parsePrice(c, "minPrice"); err != nil {
		return req, err
	}
	if req.MaxPrice, err = parsePrice(c, "maxPrice"); err != nil {
		return req, err
	}
	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return req, services.NewValidationError("maxPrice", "maxPrice must not be lower than minPrice")
	}

	return req, nil
}

// parseScope reads the category, subCategory and productList ids
func parseScope(c *gin.Context) (category, subCategory, productList *uuid.UUID, err error) {
	if category, err = parseOptionalUUID(c, "category"); err != nil {
		return
	}
	if subCategory, err = parseOptionalUUID(c, "subCategory"); err != nil {
		return
	}
	productList, err = parseOptionalUUID(c, "productList")
	return
}

func parseOptionalUUID(c *gin.Context, field string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, services.NewValidationError(field, field+" must be a valid ID")
	}
	return &id, nil
}

func parsePrice(c *gin.Context, field string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(field))
	if raw == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return nil, services.NewValidationError(field, field+" must be a non-negative number")
	}
	return &price, nil
}

func respondError(c *gin.Context, status int, code, message, field string) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    code,
			Message: message,
			Field:   field,
		},
	})
}

func respondValidationError(c *gin.Context, err *services.ValidationError) {
	respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Message, err.Field)
}
