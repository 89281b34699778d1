package models

import "time"

// Account links an identity-provider account to a local user. One is
// created the first time a patient signs in and is never mutated after.
type Account struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Provider          string    `json:"provider"`
	ProviderAccountID string    `json:"provider_account_id" gorm:"index"`
	UserID            UserID    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
