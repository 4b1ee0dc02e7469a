package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeFunding    = "FUNDING"
	TransactionTypeConversion = "CONVERSION"
	TransactionTypeTrade      = "TRADE"
)

// Transaction statuses
const (
	TransactionStatusSuccess = "SUCCESS"
	TransactionStatusFailed  = "FAILED"
	TransactionStatusPending = "PENDING"
)

// TransactionDB represents an immutable ledger row. Rows are appended once per
// accepted operation and are never updated or deleted.
type TransactionDB struct {
	TransactionID uuid.UUID           `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	Seq           int64               `json:"-" db:"seq"`                         // Insertion order, breaks timestamp ties
	WalletID      uuid.UUID           `json:"wallet_id" db:"wallet_id"`           // Wallet the transaction belongs to
	Currency      string              `json:"currency" db:"currency"`             // Source currency of the operation
	Amount        decimal.Decimal     `json:"amount" db:"amount"`                 // Original operation amount
	Rate          decimal.NullDecimal `json:"rate" db:"rate"`                     // Exchange rate used, null for funding
	Type          string              `json:"type" db:"type"`                     // FUNDING, CONVERSION or TRADE
	Status        string              `json:"status" db:"status"`                 // SUCCESS, FAILED or PENDING
	Reference     string              `json:"reference" db:"reference"`           // Caller-supplied idempotency key, unique
	Remarks       string              `json:"remarks" db:"remarks"`               // Human-readable description
	CreatedAt     time.Time           `json:"timestamp" db:"created_at"`          // Timestamp when the row was appended
}
