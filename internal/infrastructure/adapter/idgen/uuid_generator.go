package idgen

import (
	"strings"

	"github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator implements the IDGenerator interface using random UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-based id generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewReferralCode returns the first 8 hex characters of a fresh UUID,
// uppercased. Uniqueness is enforced by the store's unique index.
func (g *UUIDGenerator) NewReferralCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
