package model

import (
	"time"
)

// User represents the database model for whitelist users
type User struct {
	ID            string    `gorm:"primaryKey;size:36"`
	WalletAddress string    `gorm:"size:42;uniqueIndex;not null"`
	ReferralCode  string    `gorm:"size:8;uniqueIndex;not null"`
	ReferredBy    *string   `gorm:"size:36;index"`
	ReferralCount int64     `gorm:"not null;default:0"`
	Seq           uint64    `gorm:"autoIncrement;uniqueIndex"` // Insertion sequence, ranking tie-breaker
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
