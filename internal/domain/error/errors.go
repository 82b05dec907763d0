package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidWalletAddress    = 4001
	CodeWalletAlreadyRegistered = 4002
	CodeInvalidRequest          = 4003
	CodeTelegramUserRequired    = 4004
	CodeUserNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeNotConfigured   = 5001
	CodeUpstreamFailure = 5020
)

// Base error types
var (
	// ErrInvalidWalletAddress is returned when the wallet address does not match 0x + 40 hex chars
	ErrInvalidWalletAddress = errors.New("invalid wallet address format")

	// ErrWalletAlreadyRegistered is returned when the wallet address already has a user row
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrReferralNotFound is returned when a referral code resolves to no user
	ErrReferralNotFound = errors.New("referral code not found")

	// ErrTelegramUserRequired is returned when membership is checked without a numeric Telegram user ID
	ErrTelegramUserRequired = errors.New("telegram user ID is required")

	// ErrVerifierNotConfigured is returned when the Telegram bot token is missing
	ErrVerifierNotConfigured = errors.New("telegram bot token not configured")

	// ErrUpstreamFailure is returned when a third-party API call fails
	ErrUpstreamFailure = errors.New("upstream service failure")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidWalletAddress):
		return CodeInvalidWalletAddress
	case errors.Is(err, ErrWalletAlreadyRegistered):
		return CodeWalletAlreadyRegistered
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrTelegramUserRequired):
		return CodeTelegramUserRequired
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrVerifierNotConfigured):
		return CodeNotConfigured
	case errors.Is(err, ErrUpstreamFailure):
		return CodeUpstreamFailure
	default:
		return CodeInternalServer
	}
}

// RegistrationError represents an error during wallet registration
type RegistrationError struct {
	WalletAddress string
	ReferralCode  string
	Reason        string
	Err           error
}

// Error implements the error interface for RegistrationError
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed for wallet %s: %s - %v",
		e.WalletAddress, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RegistrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "registration_error",
		"wallet_address": e.WalletAddress,
		"referral_code":  e.ReferralCode,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewRegistrationError creates a detailed registration error
func NewRegistrationError(walletAddress, referralCode, reason string, err error) error {
	return &RegistrationError{
		WalletAddress: walletAddress,
		ReferralCode:  referralCode,
		Reason:        reason,
		Err:           err,
	}
}

// VerificationError represents a third-party verification failure
type VerificationError struct {
	Provider string
	UserID   int64
	Err      error
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s verification failed for user %d: %v", e.Provider, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamFailure
func (e *VerificationError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// LogFields returns a map of fields for structured logging
func (e *VerificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "verification_error",
		"provider":   e.Provider,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeUpstreamFailure,
	}
}

// NewVerificationError creates a new verification error
func NewVerificationError(provider string, userID int64, err error) error {
	return &VerificationError{
		Provider: provider,
		UserID:   userID,
		Err:      err,
	}
}

// IsValidationError checks if the error comes from malformed client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWalletAddress) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError checks if the error is a duplicate wallet registration
func IsConflictError(err error) bool {
	return errors.Is(err, ErrWalletAlreadyRegistered)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReferralNotFound)
}

// IsUpstreamError checks if the error comes from a third-party API
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamFailure)
}
