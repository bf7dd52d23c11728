package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
	"github.com/mkurbatov/gw-exchange-front/internal/services"
)

func TestQuoteHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockQuoteCalculator)
		expectedStatusCode int
		expectedToAmount   string
	}{
		{
			name: "successful recalculation",
			requestBody: QuoteRequest{
				Direction:    models.DirectionCryptoToFiat,
				Amount:       "1",
				FromCurrency: "BTC",
				ToCurrency:   "RUB",
			},
			setupMocks: func(mockSvc *MockQuoteCalculator) {
				mockSvc.EXPECT().
					Convert(gomock.Any(), models.DirectionCryptoToFiat, "1", "BTC", "RUB").
					Return("6500000.00", float64(6500000), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedToAmount:   "6500000.00",
		},
		{
			name: "empty amount stays empty",
			requestBody: QuoteRequest{
				Direction:    models.DirectionCryptoToFiat,
				Amount:       "",
				FromCurrency: "BTC",
				ToCurrency:   "RUB",
			},
			setupMocks: func(mockSvc *MockQuoteCalculator) {
				mockSvc.EXPECT().
					Convert(gomock.Any(), models.DirectionCryptoToFiat, "", "BTC", "RUB").
					Return("", float64(6500000), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedToAmount:   "",
		},
		{
			name: "unknown direction",
			requestBody: QuoteRequest{
				Direction:    models.Direction("sideways"),
				Amount:       "1",
				FromCurrency: "BTC",
				ToCurrency:   "RUB",
			},
			setupMocks: func(mockSvc *MockQuoteCalculator) {
				mockSvc.EXPECT().
					Convert(gomock.Any(), models.Direction("sideways"), "1", "BTC", "RUB").
					Return("", float64(0), services.ErrUnknownDirection)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockQuoteCalculator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockQuoteCalculator(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewQuoteHandler(mockSvc)

			var body bytes.Buffer
			_ = json.NewEncoder(&body).Encode(tt.requestBody)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/quote", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp QuoteResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedToAmount, resp.ToAmount)
			}
		})
	}
}

func TestRailFieldsHandler(t *testing.T) {
	handler := NewRailFieldsHandler()

	tests := []struct {
		name           string
		rail           string
		expectedFields []string
	}{
		{name: "card rail", rail: "RUB-CARD", expectedFields: []string{"card_number", "name"}},
		{name: "sbp rail", rail: "RUB-SBP", expectedFields: []string{"phone", "name"}},
		{name: "iban rail", rail: "EUR-SEPA", expectedFields: []string{"iban", "name"}},
		{name: "crypto wallet", rail: "BTC", expectedFields: []string{"wallet_address"}},
		{name: "unknown rail falls back to wallet", rail: "DOGE", expectedFields: []string{"wallet_address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Get("/api/v1/rails/{rail}", handler)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/rails/"+tt.rail, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var resp RailFieldsResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.rail, resp.Rail)
			assert.Equal(t, tt.expectedFields, resp.Fields)
		})
	}
}
