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

// ExchangeTokener defines only the methods needed by the convert and trade handlers.
type ExchangeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Converter performs the real-time-rate exchange path.
type Converter interface {
	Convert(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference string) (*services.ExchangeResult, error)
}

// Trader performs the cached-rate exchange path with the base-currency fee.
type Trader interface {
	Trade(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference string) (*services.ExchangeResult, error)
}

// ExchangeRequest represents the JSON body for convert and trade
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Source currency
	// required: true
	// default: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// default: NGN
	ToCurrency string `json:"to_currency"`

	// Amount to exchange, in the source currency
	// required: true
	// default: 100.0
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeSide describes one leg of an exchange
// swagger:model ExchangeSide
type ExchangeSide struct {
	// Currency code
	// default: USD
	Currency string `json:"currency"`

	// Amount moved on this leg
	// default: 100.0
	Amount decimal.Decimal `json:"amount"`
}

// ExchangeResponse represents a successful convert or trade response
// swagger:model ExchangeResponse
type ExchangeResponse struct {
	// Success message
	// default: Currency converted successfully
	Message string `json:"message"`

	// Operation status, "ok" or "duplicate"
	// default: ok
	Status string `json:"status"`

	// Debited leg
	From ExchangeSide `json:"from"`

	// Credited leg
	To ExchangeSide `json:"to"`

	// Exchange rate used
	// default: 1000.0
	Rate decimal.Decimal `json:"rate"`

	// Stored ledger entry
	Transaction models.TransactionDB `json:"transaction"`
}

// ExchangeErrorResponse represents an error response for convert and trade
// swagger:model ExchangeErrorResponse
type ExchangeErrorResponse struct {
	// Error message
	// default: Insufficient funds or invalid currencies
	Error string `json:"error"`
}

type exchangeFunc func(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal, reference string) (*services.ExchangeResult, error)

// NewConvertHandler handles currency conversion requests.
// @Summary Convert currency
// @Description Exchange funds from one currency to another at the real-time rate. Debit and credit are applied atomically with the ledger append.
// @Tags wallet
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Operation reference, minted when absent"
// @Param request body handlers.ExchangeRequest true "Exchange Request"
// @Success 200 {object} handlers.ExchangeResponse "Currency converted successfully"
// @Failure 400 {object} handlers.ExchangeErrorResponse "Insufficient funds or invalid currencies"
// @Failure 401 {object} handlers.ExchangeErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ExchangeErrorResponse "Rate provider unavailable"
// @Router /wallet/convert [post]
// @Security BearerAuth
func NewConvertHandler(
	svc Converter,
	tokenGetter ExchangeTokener,
) http.HandlerFunc {
	return newExchangeHandler(svc.Convert, tokenGetter, "Currency converted successfully")
}

// NewTradeHandler handles currency trade requests.
// @Summary Trade currency
// @Description Exchange funds from one currency to another at the cached rate. Trades out of the wallet's base currency carry a flat fee on the converted amount.
// @Tags wallet
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Operation reference, minted when absent"
// @Param request body handlers.ExchangeRequest true "Exchange Request"
// @Success 200 {object} handlers.ExchangeResponse "Currency traded successfully"
// @Failure 400 {object} handlers.ExchangeErrorResponse "Insufficient funds or invalid currencies"
// @Failure 401 {object} handlers.ExchangeErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ExchangeErrorResponse "Rate provider unavailable"
// @Router /wallet/trade [post]
// @Security BearerAuth
func NewTradeHandler(
	svc Trader,
	tokenGetter ExchangeTokener,
) http.HandlerFunc {
	return newExchangeHandler(svc.Trade, tokenGetter, "Currency traded successfully")
}

func newExchangeHandler(exchange exchangeFunc, tokenGetter ExchangeTokener, successMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode exchange request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Invalid request body"})
			return
		}

		reference := referenceFromRequest(r)

		result, err := exchange(ctx, claims.UserID, req.FromCurrency, req.ToCurrency, req.Amount, reference)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrInsufficientFunds),
				errors.Is(err, services.ErrWalletNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Insufficient funds or invalid currencies"})
			case errors.Is(err, services.ErrDuplicateReference):
				// Only when a lost append race could not be resolved to the
				// winning transaction; the resolved case comes back as a
				// duplicate result, not an error.
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Transaction already processed"})
			case errors.Is(err, services.ErrRateUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Rate provider unavailable"})
			default:
				logger.Log.Errorw("exchange failed", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		message := successMessage
		if result.Status == services.StatusDuplicate {
			message = "Transaction already processed"
		}

		resp := ExchangeResponse{
			Message:     message,
			Status:      result.Status,
			From:        ExchangeSide{Currency: result.FromCurrency, Amount: result.Deducted},
			To:          ExchangeSide{Currency: result.ToCurrency, Amount: result.Added},
			Rate:        result.Rate,
			Transaction: result.Transaction,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
