package registration

import (
	"context"
	"errors"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
)

// RegisterWallet validates the wallet address, resolves the optional referral
// code and creates the user row. On a referrer hit it appends one ledger row
// and reconciles the referrer's cached count.
func (s *Service) RegisterWallet(ctx context.Context, walletAddress, referralCode string) (*usecase.RegistrationResult, error) {
	normalized, err := entity.NormalizeWalletAddress(walletAddress)
	if err != nil {
		s.logger.Warn("Rejected malformed wallet address", map[string]any{
			"wallet_address": walletAddress,
		})
		return nil, err
	}

	// Uniqueness check before insert; the unique index backs this up
	_, err = s.userRepo.GetByWallet(ctx, normalized)
	if err == nil {
		s.logger.Warn("Wallet already registered", map[string]any{
			"wallet_address": normalized,
		})
		return nil, errs.ErrWalletAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	referrer, info, err := s.resolveReferrer(ctx, referralCode)
	if err != nil {
		return nil, err
	}

	var referredBy *string
	if referrer != nil {
		referredBy = &referrer.ID
	}

	user, err := entity.NewUser(s.idGen.NewID(), normalized, s.idGen.NewReferralCode(), referredBy, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"wallet_address": normalized,
			"error":          err.Error(),
		})
		return nil, err
	}

	if referrer != nil {
		s.creditReferrer(ctx, referrer, created)
	}

	s.logger.Info("Wallet registered", map[string]any{
		"user_id":        created.ID,
		"wallet_address": created.WalletAddress,
		"referral_code":  created.ReferralCode,
		"referred_by":    info.ReferredBy,
	})

	return &usecase.RegistrationResult{
		User:         created,
		ReferralInfo: info,
	}, nil
}

// resolveReferrer looks up the optional referral code. A lookup miss is
// non-fatal: registration proceeds without a referrer.
func (s *Service) resolveReferrer(ctx context.Context, referralCode string) (*entity.User, usecase.ReferralInfo, error) {
	info := usecase.ReferralInfo{}

	code := entity.NormalizeReferralCode(referralCode)
	if code == "" {
		return nil, info, nil
	}
	info.HadReferralCode = true

	referrer, err := s.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Referral code not found, proceeding without referrer", map[string]any{
				"referral_code": code,
			})
			return nil, info, nil
		}
		return nil, info, err
	}

	info.ReferrerFound = true
	info.ReferredBy = &referrer.ID

	s.logger.Info("Referral code resolved", map[string]any{
		"referral_code": code,
		"referrer_id":   referrer.ID,
	})

	return referrer, info, nil
}

// creditReferrer appends the ledger row and reconciles the referrer's cached
// count against a fresh ledger recount. Failures are logged and swallowed:
// the ledger stays the source of truth and reads self-heal the cache, so the
// primary registration never fails on this path.
func (s *Service) creditReferrer(ctx context.Context, referrer, referred *entity.User) {
	referral, err := entity.NewReferral(s.idGen.NewID(), referrer.ID, referred.ID, s.timeProvider)
	if err != nil {
		s.logger.Error("Failed to build referral ledger entry", map[string]any{
			"referrer_id": referrer.ID,
			"error":       err.Error(),
		})
		return
	}

	if err := s.referralRepo.Append(ctx, referral); err != nil {
		s.logger.Error("Failed to append referral ledger entry", map[string]any{
			"referrer_id":      referrer.ID,
			"referred_user_id": referred.ID,
			"error":            err.Error(),
		})
		return
	}

	count, err := s.referralRepo.CountByReferrer(ctx, referrer.ID)
	if err != nil {
		s.logger.Error("Failed to recount referrals for referrer", map[string]any{
			"referrer_id": referrer.ID,
			"error":       err.Error(),
		})
		return
	}

	if err := s.userRepo.UpdateReferralCount(ctx, referrer.ID, count); err != nil {
		s.logger.Error("Failed to update cached referral count", map[string]any{
			"referrer_id": referrer.ID,
			"count":       count,
			"error":       err.Error(),
		})
		return
	}

	s.logger.Info("Referrer credited", map[string]any{
		"referrer_id":      referrer.ID,
		"referred_user_id": referred.ID,
		"referral_count":   count,
	})
}
