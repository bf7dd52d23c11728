package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartnerDashboardHTTPFacade_Reads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		assert.Equal(t, "42", r.URL.Query().Get("partner_id"))

		switch r.URL.Query().Get("action") {
		case "stats":
			_, _ = w.Write([]byte(`{
				"success": true,
				"partner_code": "BC42",
				"balance": 5400,
				"commission_rate": 0.4,
				"total_clicks": 120,
				"completed_orders": 9,
				"total_volume": 1350000,
				"total_earned": 5400,
				"total_paid": 0
			}`))
		case "earnings":
			_, _ = w.Write([]byte(`{
				"success": true,
				"earnings": [
					{"id": 7, "amount": 600, "commission_rate": 0.4, "order_amount": 150000,
					 "order_direction": "crypto-to-fiat", "earned_at": "2026-08-01T10:00:00",
					 "order_number": "EX100001"}
				]
			}`))
		case "payouts":
			_, _ = w.Write([]byte(`{
				"success": true,
				"payouts": [
					{"id": 3, "amount": 1500, "payment_method": "RUB-CARD", "status": "pending",
					 "created_at": "2026-08-02T12:00:00", "processed_at": null}
				]
			}`))
		}
	}))
	defer srv.Close()

	facade := NewPartnerDashboardHTTPFacade(srv.URL)
	ctx := context.Background()

	t.Run("GetStats", func(t *testing.T) {
		stats, err := facade.GetStats(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, "BC42", stats.PartnerCode)
		assert.Equal(t, float64(5400), stats.Balance)
		assert.Equal(t, 120, stats.TotalClicks)
	})

	t.Run("GetEarnings", func(t *testing.T) {
		earnings, err := facade.GetEarnings(ctx, 42)
		assert.NoError(t, err)
		assert.Len(t, earnings, 1)
		assert.Equal(t, "EX100001", earnings[0].OrderNumber)
	})

	t.Run("GetPayouts", func(t *testing.T) {
		payouts, err := facade.GetPayouts(ctx, 42)
		assert.NoError(t, err)
		assert.Len(t, payouts, 1)
		assert.Equal(t, "pending", payouts[0].Status)
		assert.Equal(t, "RUB-CARD", payouts[0].PaymentMethod)
	})
}

func TestPartnerDashboardHTTPFacade_Mutations(t *testing.T) {
	var lastRequest map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&lastRequest)
		w.Header().Set("Content-Type", "application/json")

		if lastRequest["action"] == "request_payout" {
			// the backend refuses payout requests without a method or destination
			if lastRequest["payment_method"] == nil || lastRequest["payment_details"] == nil {
				_, _ = w.Write([]byte(`{"success": false, "error": "Missing required fields"}`))
				return
			}
			if lastRequest["amount"] == float64(999999) {
				_, _ = w.Write([]byte(`{"success": false, "error": "Недостаточно средств"}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	facade := NewPartnerDashboardHTTPFacade(srv.URL)
	ctx := context.Background()

	t.Run("RequestPayout", func(t *testing.T) {
		err := facade.RequestPayout(ctx, 42, 1500, "RUB-CARD", "2200123412341234")
		assert.NoError(t, err)
		assert.Equal(t, "request_payout", lastRequest["action"])
		assert.Equal(t, float64(42), lastRequest["partner_id"])
		assert.Equal(t, float64(1500), lastRequest["amount"])
		assert.Equal(t, "RUB-CARD", lastRequest["payment_method"])
		assert.Equal(t, "2200123412341234", lastRequest["payment_details"])
	})

	t.Run("RequestPayout backend refusal", func(t *testing.T) {
		err := facade.RequestPayout(ctx, 42, 999999, "RUB-CARD", "2200123412341234")
		assert.Error(t, err)

		var be *BackendError
		assert.ErrorAs(t, err, &be)
		assert.Equal(t, "Недостаточно средств", be.Message)
	})

	t.Run("CompleteOrder", func(t *testing.T) {
		err := facade.CompleteOrder(ctx, 17, 130000)
		assert.NoError(t, err)
		assert.Equal(t, "complete_order", lastRequest["action"])
		assert.Equal(t, float64(17), lastRequest["order_id"])
		assert.Equal(t, float64(130000), lastRequest["order_amount"])
	})
}
