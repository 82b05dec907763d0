package repository

import (
	"context"
	"fmt"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReferralRepository implements persistence.ReferralRepository using GORM.
// The referrals table is append-only; rows are never updated or deleted.
type ReferralRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts one ledger row for a referred signup
func (r *ReferralRepository) Append(ctx context.Context, referral *entity.Referral) error {
	referralModel := model.Referral{
		ID:             referral.ID,
		ReferrerID:     referral.ReferrerID,
		ReferredUserID: referral.ReferredUserID,
		CreatedAt:      referral.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&referralModel)
	if result.Error != nil {
		r.logger.Error("Database error when appending referral", map[string]any{
			"referrer_id":      referral.ReferrerID,
			"referred_user_id": referral.ReferredUserID,
			"error":            result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return errs.ErrConstraintViolation
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Referral ledger entry appended", map[string]any{
		"referral_id":      referral.ID,
		"referrer_id":      referral.ReferrerID,
		"referred_user_id": referral.ReferredUserID,
	})

	return nil
}

// CountByReferrer returns the number of ledger rows crediting the given user
func (r *ReferralRepository) CountByReferrer(ctx context.Context, referrerID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when counting referrals", map[string]any{
			"referrer_id": referrerID,
			"error":       result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count, nil
}

// referrerCount is the scan target for the grouped ledger recount
type referrerCount struct {
	ReferrerID string
	Count      int64
}

// CountsByReferrer returns ledger counts for every referrer in one grouped query
func (r *ReferralRepository) CountsByReferrer(ctx context.Context) (map[string]int64, error) {
	var rows []referrerCount
	result := r.db.WithContext(ctx).Model(&model.Referral{}).
		Select("referrer_id, COUNT(*) AS count").
		Group("referrer_id").
		Scan(&rows)

	if result.Error != nil {
		r.logger.Error("Database error when recounting referrals", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ReferrerID] = row.Count
	}

	return counts, nil
}
