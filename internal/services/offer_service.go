package services

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

// DefaultCurrencyLabel is printed in fixed-amount offer labels
const DefaultCurrencyLabel = "EGP"

// Locale selects the language of offer copy
type Locale string

const (
	LocaleEn Locale = "en"
	LocaleAr Locale = "ar"
)

// ParseLocale returns LocaleAr for "ar" and LocaleEn for anything else
func ParseLocale(raw string) Locale {
	if strings.EqualFold(strings.TrimSpace(raw), string(LocaleAr)) {
		return LocaleAr
	}
	return LocaleEn
}

// Notifier delivers offer claim emails
type Notifier interface {
	SendOfferClaim(ctx context.Context, notification *models.OfferClaimNotification) error
}

// OfferService resolves the storefront's active offer
type OfferService struct {
	repo          repository.OfferRepositoryInterface
	notifier      Notifier
	currencyLabel string
	now           func() time.Time
	logger        *logrus.Entry
}

// NewOfferService creates a new OfferService
func NewOfferService(repo repository.OfferRepositoryInterface, notifier Notifier, currencyLabel string, logger *logrus.Entry) *OfferService {
	if currencyLabel == "" {
		currencyLabel = DefaultCurrencyLabel
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &OfferService{
		repo:          repo,
		notifier:      notifier,
		currencyLabel: currencyLabel,
		now:           time.Now,
		logger:        logger,
	}
}

// GetActiveOffer returns the popup summary of the running offer, or nil when
// no offer is running
func (s *OfferService) GetActiveOffer(ctx context.Context, locale Locale) (*models.OfferSummary, error) {
	offer, err := s.repo.GetActiveOffer(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("get active offer: %w", err)
	}
	if offer == nil {
		return nil, nil
	}
	return s.summarize(offer, locale), nil
}

// ClaimOffer sends the running offer's voucher to email. The email is trimmed
// and lower-cased before use.
func (s *OfferService) ClaimOffer(ctx context.Context, email string, locale Locale) (*models.OfferSummary, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, NewValidationError("email", "Email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, NewValidationError("email", "Email is not a valid address")
	}

	summary, err := s.GetActiveOffer(ctx, locale)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, ErrNoActiveOffer
	}

	notification := &models.OfferClaimNotification{
		Email:       email,
		Locale:      string(locale),
		OfferID:     summary.ID.String(),
		Headline:    summary.Headline,
		Amount:      summary.Amount,
		AmountLabel: summary.AmountLabel,
		VoucherCode: summary.VoucherCode,
	}

	if s.notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := s.notifier.SendOfferClaim(ctx, notification); err != nil {
				s.logger.WithError(err).WithField("offer_id", notification.OfferID).Warn("Failed to send offer claim notification")
			}
		}()
	}

	return summary, nil
}

func (s *OfferService) summarize(offer *models.Offer, locale Locale) *models.OfferSummary {
	headline, subHeadline := offer.NameEn, offer.DescriptionEn
	if locale == LocaleAr {
		headline, subHeadline = offer.NameAr, offer.DescriptionAr
	}

	amount := offer.DiscountValue.Float64()
	summary := &models.OfferSummary{
		ID:          offer.ID,
		Headline:    headline,
		Amount:      amount,
		AmountLabel: FormatAmountLabel(offer.Type, amount, s.currencyLabel),
		VoucherCode: offer.Code,
		ImageURL:    offer.ImageURL,
	}
	if subHeadline != nil {
		summary.SubHeadline = *subHeadline
	}
	return summary
}

// FormatAmountLabel renders the discount badge for an offer
func FormatAmountLabel(offerType models.OfferType, amount float64, currencyLabel string) string {
	switch {
	case offerType == models.OfferTypeFreeShipping:
		return "Free Shipping"
	case offerType == models.OfferTypeFixedAmount:
		return fmt.Sprintf("%s %s Off", formatAmount(amount), currencyLabel)
	case amount > 0:
		return fmt.Sprintf("%s%% Off", formatAmount(amount))
	default:
		return "Special Offer"
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
