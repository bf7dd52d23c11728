package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

var (
	// ErrIncompleteRequest is returned when required exchange fields are empty.
	ErrIncompleteRequest = errors.New("не заполнены обязательные поля заявки")
	// ErrUnknownDirection is returned when the direction is not one of the two known values.
	ErrUnknownDirection = errors.New("unknown exchange direction")
)

// RatePairReader retrieves a rate for a crypto/fiat pair.
type RatePairReader interface {
	GetRateForPair(ctx context.Context, base, quote string) (float64, error) // Returns the crypto price in fiat units
}

// RateCache caches rates for a crypto/fiat pair.
type RateCache interface {
	GetRateForPair(ctx context.Context, base, quote string) (float64, error)    // Returns cached rate
	SetRateForPair(ctx context.Context, base, quote string, rate float64) error // Sets cached rate
}

// QuoteService recalculates exchange quotes and assembles exchange requests.
// Rates come from the cache first, then the live provider, then the built-in
// fallback table; a quoted rate is valid for quoteTTL after calculation.
type QuoteService struct {
	cache    RateCache
	live     RatePairReader
	static   RatePairReader
	quoteTTL time.Duration
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(
	cache RateCache,
	live RatePairReader,
	static RatePairReader,
	quoteTTL time.Duration,
) *QuoteService {
	return &QuoteService{
		cache:    cache,
		live:     live,
		static:   static,
		quoteTTL: quoteTTL,
	}
}

// normalizePair orders a pair crypto-first regardless of exchange direction,
// so rate lookups always ask for the crypto price in fiat units.
func normalizePair(direction models.Direction, from, to string) (base, quote string) {
	base, quote = from, to
	if direction == models.DirectionFiatToCrypto {
		base, quote = to, from
	}
	return base, quote
}

// parseAmount parses the user-entered amount. Empty and malformed input is
// reported as not ok rather than as an error: the form simply shows an empty
// destination field while the user is typing.
func parseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// formatDestination applies the rate and renders the destination amount with
// the precision of its side: 2 decimals for fiat, 8 for crypto.
func formatDestination(direction models.Direction, amount, rate float64) string {
	var v float64
	switch direction {
	case models.DirectionCryptoToFiat:
		v = amount * rate
	case models.DirectionFiatToCrypto:
		if rate == 0 {
			return ""
		}
		v = amount / rate
	default:
		return ""
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ""
	}
	if direction == models.DirectionCryptoToFiat {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 8, 64)
}

// rate resolves the quote for a normalized pair through the provider chain.
func (s *QuoteService) rate(ctx context.Context, base, quote string) float64 {
	if s.cache != nil {
		if rate, err := s.cache.GetRateForPair(ctx, base, quote); err == nil && rate > 0 {
			return rate
		}
	}

	if s.live != nil {
		if rate, err := s.live.GetRateForPair(ctx, base, quote); err == nil && rate > 0 {
			if s.cache != nil {
				if err := s.cache.SetRateForPair(ctx, base, quote, rate); err != nil {
					logger.Log.Warnw("failed to cache rate", "base", base, "quote", quote, "error", err)
				}
			}
			return rate
		}
	}

	if s.static != nil {
		if rate, err := s.static.GetRateForPair(ctx, base, quote); err == nil && rate > 0 {
			return rate
		}
	}

	logger.Log.Warnw("no rate available for pair, using 1", "base", base, "quote", quote)
	return 1
}

// Convert recalculates the destination amount for the entered source amount.
// An empty or malformed amount yields an empty destination and no error.
func (s *QuoteService) Convert(ctx context.Context, direction models.Direction, amount, fromCurrency, toCurrency string) (string, float64, error) {
	if !direction.Valid() {
		return "", 0, ErrUnknownDirection
	}

	base, quote := normalizePair(direction, fromCurrency, toCurrency)
	rate := s.rate(ctx, base, quote)

	v, ok := parseAmount(amount)
	if !ok {
		return "", rate, nil
	}

	return formatDestination(direction, v, rate), rate, nil
}

// BuildRequest validates the filled exchange form and produces an exchange
// request carrying a freshly calculated quote.
func (s *QuoteService) BuildRequest(
	ctx context.Context,
	direction models.Direction,
	amount, fromCurrency, toCurrency string,
	recipient map[string]string,
	partnerID int64,
) (*models.ExchangeRequest, error) {
	if !direction.Valid() {
		return nil, ErrUnknownDirection
	}
	if fromCurrency == "" || toCurrency == "" {
		return nil, ErrIncompleteRequest
	}

	v, ok := parseAmount(amount)
	if !ok {
		return nil, ErrIncompleteRequest
	}

	// the destination side names the rail: a fiat rail for crypto-to-fiat,
	// the coin itself for fiat-to-crypto
	for _, field := range models.RequiredFieldsForRail(toCurrency) {
		if strings.TrimSpace(recipient[field]) == "" {
			return nil, ErrIncompleteRequest
		}
	}

	base, quote := normalizePair(direction, fromCurrency, toCurrency)
	rate := s.rate(ctx, base, quote)

	toAmount := formatDestination(direction, v, rate)
	if toAmount == "" {
		return nil, ErrIncompleteRequest
	}

	now := time.Now()
	return &models.ExchangeRequest{
		Direction:    direction,
		FromCurrency: fromCurrency,
		FromAmount:   strconv.FormatFloat(v, 'f', -1, 64),
		ToCurrency:   toCurrency,
		ToAmount:     toAmount,
		Rate:         rate,
		Recipient:    recipient,
		PartnerID:    partnerID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.quoteTTL),
	}, nil
}
