package persistence

import (
	"context"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
)

// UserRepository defines essential methods to interact with whitelist user data
type UserRepository interface {
	// Create inserts a new user row
	//
	// Possible errors:
	// - ErrWalletAlreadyRegistered: if the wallet address or referral code already exists
	// - ErrDatabaseConnection: if the database connection fails
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// GetByID retrieves a user by its id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the id exists
	// - ErrDatabaseConnection: if the database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByWallet retrieves a user by lowercased wallet address
	//
	// Possible errors:
	// - ErrUserNotFound: if the wallet is not registered
	// - ErrDatabaseConnection: if the database connection fails
	GetByWallet(ctx context.Context, walletAddress string) (*entity.User, error)

	// GetByReferralCode retrieves a user by uppercase referral code
	//
	// Possible errors:
	// - ErrUserNotFound: if no user owns the code
	// - ErrDatabaseConnection: if the database connection fails
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// ListAll returns the entire user set, used for leaderboard assembly
	ListAll(ctx context.Context) ([]*entity.User, error)

	// UpdateReferralCount overwrites a user's cached referral count.
	// Used by the read-repair reconciliation path; callers treat failures
	// as non-fatal.
	UpdateReferralCount(ctx context.Context, userID string, count int64) error
}
