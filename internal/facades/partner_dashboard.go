package facades

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// PartnerDashboardHTTPFacade reads partner statistics and mutates balances
// through the external dashboard backend. Reads go over GET with an action
// query parameter, mutations over POST.
type PartnerDashboardHTTPFacade struct {
	client *resty.Client
}

// NewPartnerDashboardHTTPFacade creates a facade pointed at the dashboard API base URL.
func NewPartnerDashboardHTTPFacade(baseURL string) *PartnerDashboardHTTPFacade {
	return &PartnerDashboardHTTPFacade{
		client: resty.New().SetBaseURL(baseURL),
	}
}

// dashboardResponse covers every dashboard endpoint answer. The stats action
// returns the figures flat next to success, so PartnerStats is embedded.
type dashboardResponse struct {
	Success bool `json:"success"`
	models.PartnerStats
	Earnings []models.PartnerEarning `json:"earnings"`
	Payouts  []models.PartnerPayout  `json:"payouts"`
	Error    string                  `json:"error"`
}

func (f *PartnerDashboardHTTPFacade) get(ctx context.Context, action string, partnerID int64) (*dashboardResponse, error) {
	var dr dashboardResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":     action,
			"partner_id": strconv.FormatInt(partnerID, 10),
		}).
		SetResult(&dr).
		SetError(&dr).
		Get("")
	if err != nil {
		logger.Log.Errorw("partner dashboard request failed", "action", action, "error", err)
		return nil, err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, fmt.Errorf("partner dashboard request status: %d", resp.StatusCode())
	}
	if !dr.Success {
		return nil, backendErr(dr.Error)
	}

	return &dr, nil
}

// GetStats returns aggregate partner figures
func (f *PartnerDashboardHTTPFacade) GetStats(ctx context.Context, partnerID int64) (*models.PartnerStats, error) {
	dr, err := f.get(ctx, "stats", partnerID)
	if err != nil {
		return nil, err
	}
	return &dr.PartnerStats, nil
}

// GetEarnings returns the recent commission history
func (f *PartnerDashboardHTTPFacade) GetEarnings(ctx context.Context, partnerID int64) ([]models.PartnerEarning, error) {
	dr, err := f.get(ctx, "earnings", partnerID)
	if err != nil {
		return nil, err
	}
	return dr.Earnings, nil
}

// GetPayouts returns the payout request history
func (f *PartnerDashboardHTTPFacade) GetPayouts(ctx context.Context, partnerID int64) ([]models.PartnerPayout, error) {
	dr, err := f.get(ctx, "payouts", partnerID)
	if err != nil {
		return nil, err
	}
	return dr.Payouts, nil
}

type dashboardMutation struct {
	Action         string  `json:"action"`
	PartnerID      int64   `json:"partner_id,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	PaymentDetails string  `json:"payment_details,omitempty"`
	OrderID        int64   `json:"order_id,omitempty"`
	OrderAmount    float64 `json:"order_amount,omitempty"`
}

func (f *PartnerDashboardHTTPFacade) post(ctx context.Context, req *dashboardMutation) error {
	var dr dashboardResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&dr).
		SetError(&dr).
		Post("")
	if err != nil {
		logger.Log.Errorw("partner dashboard request failed", "action", req.Action, "error", err)
		return err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("partner dashboard request status: %d", resp.StatusCode())
	}
	if !dr.Success {
		return backendErr(dr.Error)
	}

	return nil
}

// RequestPayout submits a payout request against the partner balance
func (f *PartnerDashboardHTTPFacade) RequestPayout(ctx context.Context, partnerID int64, amount float64, method, details string) error {
	return f.post(ctx, &dashboardMutation{
		Action:         "request_payout",
		PartnerID:      partnerID,
		Amount:         amount,
		PaymentMethod:  method,
		PaymentDetails: details,
	})
}

// CompleteOrder marks an order completed so the partner commission is credited
func (f *PartnerDashboardHTTPFacade) CompleteOrder(ctx context.Context, orderID int64, orderAmount float64) error {
	return f.post(ctx, &dashboardMutation{
		Action:      "complete_order",
		OrderID:     orderID,
		OrderAmount: orderAmount,
	})
}
