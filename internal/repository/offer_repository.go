package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"storefront-service/internal/models"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

var _ OfferRepositoryInterface = (*OfferRepository)(nil)

// GetActiveOffer returns the newest enabled offer whose window contains now,
// or nil when no offer is running
func (r *OfferRepository) GetActiveOffer(ctx context.Context, now time.Time) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("created_at DESC").
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}
