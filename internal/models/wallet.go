package models

import (
	"time"

	"github.com/google/uuid"
)

// Commonly used currency codes. Codes are not restricted to this list:
// any currency known to the rate feed is accepted.
const (
	NGN = "NGN"
	USD = "USD"
	EUR = "EUR"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID     uuid.UUID `json:"wallet_id" db:"wallet_id"`         // Unique wallet identifier
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Identifier of the wallet's owner
	BaseCurrency string    `json:"base_currency" db:"base_currency"` // Reference currency of the wallet (e.g. NGN)
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Timestamp when the wallet was created
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Timestamp of the last wallet update
}
