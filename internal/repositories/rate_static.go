package repositories

import (
	"context"
	"fmt"
)

// defaultRates are the fallback quotes used when both the cache and the live
// provider are unavailable. Keys are crypto-first pairs.
var defaultRates = map[string]float64{
	"BTC-RUB":  6500000,
	"ETH-RUB":  350000,
	"USDT-RUB": 95,
	"BNB-RUB":  45000,
	"SOL-RUB":  18000,
	"BTC-USD":  68000,
	"ETH-USD":  3700,
	"USDT-USD": 1,
	"BNB-USD":  475,
	"SOL-USD":  190,
}

// StaticRateRepository serves built-in fallback rates.
type StaticRateRepository struct {
	rates map[string]float64
}

// NewStaticRateRepository creates a repository backed by the built-in rate table
func NewStaticRateRepository() *StaticRateRepository {
	return &StaticRateRepository{rates: defaultRates}
}

// GetRateForPair returns the fallback rate for a crypto/fiat pair
func (r *StaticRateRepository) GetRateForPair(ctx context.Context, base, quote string) (float64, error) {
	rate, ok := r.rates[base+"-"+quote]
	if !ok {
		return 0, fmt.Errorf("no fallback rate for %s-%s", base, quote)
	}
	return rate, nil
}
