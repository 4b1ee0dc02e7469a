package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when no rate is obtainable for a currency
// pair: the feed failed, timed out, or does not quote the target currency.
// The condition is retryable; no balance mutation can have happened.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateFeedReader fetches rate tables from the external market-data feed.
type RateFeedReader interface {
	GetRates(ctx context.Context, base string) (models.RateTable, error)
}

// RateCache caches rate tables per base currency.
type RateCache interface {
	GetRates(ctx context.Context, base string) (models.RateTable, error)
	SetRates(ctx context.Context, base string, rates models.RateTable) error
}

// RateService resolves exchange rates, consulting the cache before the feed.
type RateService struct {
	feed  RateFeedReader
	cache RateCache
}

// NewRateService creates a new RateService.
func NewRateService(feed RateFeedReader, cache RateCache) *RateService {
	return &RateService{feed: feed, cache: cache}
}

// GetRates returns the rate table for a base currency. A cached table within
// its freshness window is returned as-is; on a miss the feed is fetched and
// the result cached. Cache failures only fall through to the feed.
func (svc *RateService) GetRates(ctx context.Context, base string) (models.RateTable, error) {
	rates, err := svc.cache.GetRates(ctx, base)
	if err == nil {
		return rates, nil
	}

	rates, err = svc.feed.GetRates(ctx, base)
	if err != nil {
		logger.Log.Errorw("failed to fetch rates from feed", "base", base, "error", err)
		return nil, ErrRateUnavailable
	}

	if err := svc.cache.SetRates(ctx, base, rates); err != nil {
		logger.Log.Errorw("failed to cache rate table", "base", base, "error", err)
	}

	return rates, nil
}

// GetRate returns the rate from one currency to another. The identity pair
// resolves to 1 without any lookup.
func (svc *RateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if fromCurrency == toCurrency {
		return decimal.NewFromInt(1), nil
	}

	rates, err := svc.GetRates(ctx, fromCurrency)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := rates[toCurrency]
	if !ok {
		logger.Log.Warnw("currency pair not quoted by feed", "from", fromCurrency, "to", toCurrency)
		return decimal.Zero, ErrRateUnavailable
	}

	return rate, nil
}

// SupportsCurrency reports whether the feed resolves the given currency as a
// base, i.e. whether it is a currency the provider knows at all. A feed outage
// is not a verdict on the currency: it surfaces as ErrRateUnavailable so that
// callers report a retryable condition instead of rejecting the request.
func (svc *RateService) SupportsCurrency(ctx context.Context, currency string) (bool, error) {
	rates, err := svc.GetRates(ctx, currency)
	if err != nil {
		return false, err
	}
	return len(rates) > 0, nil
}
