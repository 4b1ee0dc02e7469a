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
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// TransactionsResponse represents the user's transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Ledger entries, newest first
	Transactions []models.TransactionDB `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for the history
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Wallet not found
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for the transaction history.
// @Summary List transactions
// @Description Returns the user's ledger entries ordered newest first
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionsErrorResponse "Wallet not found"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(
	svc TransactionLister,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		txns, err := svc.ListTransactions(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrWalletNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Wallet not found"})
				return
			}
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := TransactionsResponse{Transactions: txns}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
