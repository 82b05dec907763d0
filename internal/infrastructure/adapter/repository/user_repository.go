package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:            userModel.ID,
		WalletAddress: userModel.WalletAddress,
		ReferralCode:  userModel.ReferralCode,
		ReferredBy:    userModel.ReferredBy,
		ReferralCount: userModel.ReferralCount,
		Seq:           userModel.Seq,
		CreatedAt:     userModel.CreatedAt,
	}
}

// entityToModel converts a user entity to its database model
func entityToModel(user *entity.User) *model.User {
	return &model.User{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		ReferralCode:  user.ReferralCode,
		ReferredBy:    user.ReferredBy,
		ReferralCount: user.ReferralCount,
		CreatedAt:     user.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", map[string]any{
			"operation": operation,
			"key":       key,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrWalletAlreadyRegistered
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new user row and returns it with store-assigned fields
// (insertion sequence) populated
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":        user.ID,
		"wallet_address": user.WalletAddress,
	})

	userModel := entityToModel(user)

	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating user", result.Error, user.WalletAddress)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":        userModel.ID,
		"wallet_address": userModel.WalletAddress,
		"referral_code":  userModel.ReferralCode,
		"seq":            userModel.Seq,
	})

	return modelToEntity(userModel), nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by id", result.Error, id)
	}

	return modelToEntity(&userModel), nil
}

// GetByWallet retrieves a user by lowercased wallet address
func (r *UserRepository) GetByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by wallet", result.Error, walletAddress)
	}

	return modelToEntity(&userModel), nil
}

// GetByReferralCode retrieves a user by uppercase referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by referral code", result.Error, code)
	}

	return modelToEntity(&userModel), nil
}

// ListAll returns the entire user set ordered by insertion sequence
func (r *UserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("seq ASC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = modelToEntity(&userModels[i])
	}

	r.logger.Debug("Users listed", map[string]any{
		"count": len(users),
	})

	return users, nil
}

// UpdateReferralCount overwrites a user's cached referral count
func (r *UserRepository) UpdateReferralCount(ctx context.Context, userID string, count int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("referral_count", count)

	if result.Error != nil {
		return r.handleDatabaseError("updating referral count", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during referral count update", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Cached referral count updated", map[string]any{
		"user_id": userID,
		"count":   count,
	})

	return nil
}
