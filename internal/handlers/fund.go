package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// idempotencyHeader carries the caller-supplied operation reference. When the
// header is absent a fresh UUID is minted, making the request effectively
// non-retryable by the caller.
const idempotencyHeader = "Idempotency-Key"

func referenceFromRequest(r *http.Request) string {
	if ref := r.Header.Get(idempotencyHeader); ref != "" {
		return ref
	}
	return uuid.NewString()
}

// FundTokener defines only the methods needed by this handler.
type FundTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Funder defines the interface that the service must implement.
type Funder interface {
	Fund(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, reference string) (*services.FundResult, error)
}

// FundRequest represents the JSON body for funding a wallet
// swagger:model FundRequest
type FundRequest struct {
	// Currency to fund
	// required: true
	// default: USD
	Currency string `json:"currency"`

	// Amount to fund
	// required: true
	// default: 100.0
	Amount decimal.Decimal `json:"amount"`
}

// FundResponse represents a successful funding response
// swagger:model FundResponse
type FundResponse struct {
	// Success message
	// default: Wallet funded successfully
	Message string `json:"message"`

	// Operation status, "ok" or "duplicate"
	// default: ok
	Status string `json:"status"`

	// Stored ledger entry
	Transaction models.TransactionDB `json:"transaction"`

	// New balance in the funded currency
	NewBalance decimal.Decimal `json:"new_balance"`
}

// FundErrorResponse represents an error response for funding
// swagger:model FundErrorResponse
type FundErrorResponse struct {
	// Error message
	// default: Invalid amount or currency
	Error string `json:"error"`
}

// NewFundHandler returns an HTTP handler for funding a user wallet.
// @Summary Fund wallet
// @Description Credit an amount to the user's balance in the given currency. The wallet and the balance record are created lazily. A repeated Idempotency-Key returns the stored transaction without crediting again.
// @Tags wallet
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Operation reference, minted when absent"
// @Param request body handlers.FundRequest true "Fund Request"
// @Success 200 {object} handlers.FundResponse "Wallet funded successfully"
// @Failure 400 {object} handlers.FundErrorResponse "Invalid amount or currency"
// @Failure 401 {object} handlers.FundErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.FundErrorResponse "Rate provider unavailable"
// @Router /wallet/fund [post]
// @Security BearerAuth
func NewFundHandler(
	svc Funder,
	tokenGetter FundTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Unauthorized"})
			return
		}

		var req FundRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode fund request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundErrorResponse{Error: "Invalid request body"})
			return
		}

		reference := referenceFromRequest(r)

		result, err := svc.Fund(ctx, claims.UserID, req.Currency, req.Amount, reference)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrUnsupportedCurrency):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FundErrorResponse{Error: "Invalid amount or currency"})
			case errors.Is(err, services.ErrDuplicateReference):
				// Only when a lost append race could not be resolved to the
				// winning transaction; the resolved case comes back as a
				// duplicate result, not an error.
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FundErrorResponse{Error: "Transaction already processed"})
			case errors.Is(err, services.ErrRateUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(FundErrorResponse{Error: "Rate provider unavailable"})
			default:
				logger.Log.Errorw("failed to fund wallet", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FundErrorResponse{Error: "Internal server error"})
			}
			return
		}

		message := "Wallet funded successfully"
		if result.Status == services.StatusDuplicate {
			message = "Transaction already processed"
		}

		resp := FundResponse{
			Message:     message,
			Status:      result.Status,
			Transaction: result.Transaction,
			NewBalance:  result.NewBalance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
