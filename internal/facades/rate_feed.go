package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
)

// RateFeedFacade fetches rate tables from the external market-data feed over
// HTTP. The feed contract is GET <baseURL>/<base> returning
// {"rates": {"USD": 0.0012, ...}}. The call carries a bounded timeout and no
// internal retry; any transport failure, non-2xx status or malformed body is
// reported to the caller as-is.
type RateFeedFacade struct {
	baseURL string
	client  *http.Client
}

// NewRateFeedFacade creates a new facade for the given feed URL and timeout.
func NewRateFeedFacade(baseURL string, timeout time.Duration) *RateFeedFacade {
	return &RateFeedFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type rateFeedResponse struct {
	Rates models.RateTable `json:"rates"`
}

// GetRates fetches the rate table for a base currency from the feed.
func (f *RateFeedFacade) GetRates(ctx context.Context, base string) (models.RateTable, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch rates from feed", "base", base, "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("rate feed returned non-2xx status", "base", base, "status", resp.StatusCode)
		return nil, fmt.Errorf("rate feed returned status %d for base %s", resp.StatusCode, base)
	}

	var body rateFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode rate feed response", "base", base, "error", err)
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate feed returned no rates for base %s", base)
	}

	return body.Rates, nil
}
