package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

// OfferService is the active-offer surface the handlers depend on
type OfferService interface {
	GetActiveOffer(ctx context.Context, locale services.Locale) (*models.OfferSummary, error)
	ClaimOffer(ctx context.Context, email string, locale services.Locale) (*models.OfferSummary, error)
}

var _ OfferService = (*services.OfferService)(nil)

type OfferHandler struct {
	service OfferService
	logger  *logrus.Entry
}

func NewOfferHandler(service OfferService, logger *logrus.Entry) *OfferHandler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &OfferHandler{service: service, logger: logger}
}

// GetActiveOffer returns the running offer for the storefront popup
// @Summary Active offer
// @Description Returns null data when no offer is running
// @Tags offers
// @Produce json
// @Param locale query string false "en or ar" default(en)
// @Success 200 {object} models.ActiveOfferResponse
// @Router /storefront/offers/active [get]
func (h *OfferHandler) GetActiveOffer(c *gin.Context) {
	offer, err := h.service.GetActiveOffer(c.Request.Context(), services.ParseLocale(c.Query("locale")))
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve active offer")
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to retrieve active offer", "")
		return
	}

	c.JSON(http.StatusOK, models.ActiveOfferResponse{
		Success: true,
		Data:    offer,
	})
}

// ClaimOffer emails the running offer's voucher to a shopper
// @Summary Claim active offer
// @Tags offers
// @Accept json
// @Produce json
// @Param request body models.ClaimOfferRequest true "Claim"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/offers/claim [post]
func (h *OfferHandler) ClaimOffer(c *gin.Context) {
	var req models.ClaimOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required", "email")
		return
	}

	_, err := h.service.ClaimOffer(c.Request.Context(), req.Email, services.ParseLocale(req.Locale))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respondValidationError(c, validationErr)
		case errors.Is(err, services.ErrNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "No active offer", "")
		default:
			h.logger.WithError(err).Error("Failed to claim offer")
			respondError(c, http.StatusInternalServerError, "CLAIM_FAILED", "Failed to claim offer", "")
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Success: true,
		Message: "Offer sent to your email",
	})
}
