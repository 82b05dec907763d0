package model

import (
	"time"
)

// Referral represents the database model for the append-only referral ledger
type Referral struct {
	ID             string    `gorm:"primaryKey;size:36"`
	ReferrerID     string    `gorm:"size:36;not null;index"`
	ReferredUserID string    `gorm:"size:36;not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
