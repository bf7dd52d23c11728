package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
)

// RatesHTTPFacade fetches live exchange rates from the external rates API.
type RatesHTTPFacade struct {
	client *resty.Client
}

// NewRatesHTTPFacade creates a facade pointed at the rates API base URL.
func NewRatesHTTPFacade(baseURL string) *RatesHTTPFacade {
	return &RatesHTTPFacade{
		client: resty.New().SetBaseURL(baseURL),
	}
}

type ratesResponse struct {
	Success   bool               `json:"success"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
	Error     string             `json:"error"`
}

// GetRateForPair returns the live rate for a crypto/fiat pair. The provider
// publishes crypto-vs-RUB symbols plus a few direct pairs, so the lookup
// falls back to a cross rate through RUB when the pair itself is absent.
func (f *RatesHTTPFacade) GetRateForPair(ctx context.Context, base, quote string) (float64, error) {
	var rr ratesResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&rr).
		Get("")
	if err != nil {
		logger.Log.Errorw("failed to fetch live rates", "error", err)
		return 0, err
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("rates request status: %d", resp.StatusCode())
	}
	if !rr.Success {
		return 0, backendErr(rr.Error)
	}

	if rate, ok := rr.Rates[base+"-"+quote]; ok {
		return rate, nil
	}
	if inverse, ok := rr.Rates[quote+"-"+base]; ok && inverse != 0 {
		return 1 / inverse, nil
	}

	baseRUB, okBase := rubRate(rr.Rates, base)
	quoteRUB, okQuote := rubRate(rr.Rates, quote)
	if okBase && okQuote && quoteRUB != 0 {
		return baseRUB / quoteRUB, nil
	}

	return 0, fmt.Errorf("no live rate for %s-%s", base, quote)
}

func rubRate(rates map[string]float64, currency string) (float64, bool) {
	if currency == "RUB" {
		return 1, true
	}
	if rate, ok := rates[currency+"-RUB"]; ok {
		return rate, true
	}
	if rate, ok := rates[currency]; ok {
		return rate, true
	}
	return 0, false
}
