package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// WalletTokener defines only the methods needed by this handler.
type WalletTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*services.WalletSummary, error)
}

// WalletBalance represents one per-currency balance in the response
// swagger:model WalletBalance
type WalletBalance struct {
	// Currency code
	// default: NGN
	Currency string `json:"currency"`

	// Amount held
	// default: 1000.0
	Amount decimal.Decimal `json:"amount"`
}

// WalletResponse represents a wallet with its balances
// swagger:model WalletResponse
type WalletResponse struct {
	// Base (display) currency of the wallet
	// default: NGN
	BaseCurrency string `json:"base_currency"`

	// Balances per currency ever touched
	Balances []WalletBalance `json:"balances"`
}

// WalletErrorResponse represents an error response when fetching the wallet
// swagger:model WalletErrorResponse
type WalletErrorResponse struct {
	// Error message
	// default: Wallet not found
	Error string `json:"error"`
}

// NewGetWalletHandler returns an HTTP handler for fetching the user wallet.
// @Summary Get user wallet
// @Description Returns the wallet's base currency and all per-currency balances
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletResponse "User wallet"
// @Failure 401 {object} handlers.WalletErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WalletErrorResponse "Wallet not found"
// @Failure 500 {object} handlers.WalletErrorResponse "Internal server error"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(
	svc WalletGetter,
	tokenGetter WalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized wallet request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Unauthorized"})
			return
		}

		summary, err := svc.GetWallet(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrWalletNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Wallet not found"})
				return
			}
			logger.Log.Errorw("failed to get wallet", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WalletErrorResponse{Error: "Internal server error"})
			return
		}

		balances := make([]WalletBalance, 0, len(summary.Balances))
		for _, b := range summary.Balances {
			balances = append(balances, WalletBalance{Currency: b.Currency, Amount: b.Amount})
		}

		resp := WalletResponse{
			BaseCurrency: summary.BaseCurrency,
			Balances:     balances,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
