package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceDB represents one per-currency balance row owned by a wallet
type BalanceDB struct {
	BalanceID uuid.UUID       `json:"balance_id" db:"balance_id"` // Unique balance identifier
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`   // Owning wallet
	Currency  string          `json:"currency" db:"currency"`     // Currency code (e.g. NGN, USD, EUR)
	Amount    decimal.Decimal `json:"amount" db:"amount"`         // Current amount, never negative
}
