package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// RatesProvider defines the interface that the rate service must implement.
type RatesProvider interface {
	GetRates(ctx context.Context, base string) (models.RateTable, error)
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// RatesResponse represents a rate table for one base currency
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency of the table
	// default: NGN
	Base string `json:"base"`

	// Target currency -> rate
	Rates models.RateTable `json:"rates"`
}

// RateResponse represents a single-pair rate lookup
// swagger:model RateResponse
type RateResponse struct {
	// Source currency
	// default: USD
	From string `json:"from"`

	// Target currency
	// default: NGN
	To string `json:"to"`

	// Exchange rate
	// default: 1000.0
	Rate decimal.Decimal `json:"rate"`
}

// RatesErrorResponse represents an error response for rate lookups
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// default: Rate provider unavailable
	Error string `json:"error"`
}

// NewGetRatesHandler returns an HTTP handler for rate lookups. With from/to
// query parameters it resolves a single pair, otherwise it returns the whole
// table for the base currency (default NGN).
// @Summary Get exchange rates
// @Description Returns the cached-or-fetched rate table for a base currency, or a single pair when from and to are given
// @Tags rates
// @Produce json
// @Param base query string false "Base currency for the full table"
// @Param from query string false "Source currency for a pair lookup"
// @Param to query string false "Target currency for a pair lookup"
// @Success 200 {object} handlers.RatesResponse "Rate table"
// @Failure 502 {object} handlers.RatesErrorResponse "Rate provider unavailable"
// @Router /rates [get]
// @Security BearerAuth
func NewGetRatesHandler(
	svc RatesProvider,
	defaultBase string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		if from != "" && to != "" {
			rate, err := svc.GetRate(ctx, from, to)
			if err != nil {
				writeRatesError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(RateResponse{From: from, To: to, Rate: rate})
			return
		}

		base := r.URL.Query().Get("base")
		if base == "" {
			base = defaultBase
		}

		rates, err := svc.GetRates(ctx, base)
		if err != nil {
			writeRatesError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RatesResponse{Base: base, Rates: rates})
	}
}

func writeRatesError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrRateUnavailable) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(RatesErrorResponse{Error: "Rate provider unavailable"})
		return
	}
	logger.Log.Errorw("failed to get rates", "error", err)
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(RatesErrorResponse{Error: "Internal server error"})
}
