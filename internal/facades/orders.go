package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrdersHTTPFacade registers orders and referral clicks with the exchange
// order backend.
type OrdersHTTPFacade struct {
	client *resty.Client
}

// NewOrdersHTTPFacade creates a facade pointed at the order API base URL.
func NewOrdersHTTPFacade(baseURL string) *OrdersHTTPFacade {
	return &OrdersHTTPFacade{
		client: resty.New().SetBaseURL(baseURL),
	}
}

type createOrderRequest struct {
	Action          string  `json:"action"`
	Direction       string  `json:"direction"`
	FromCurrency    string  `json:"from_currency"`
	FromAmount      string  `json:"from_amount"`
	ToCurrency      string  `json:"to_currency"`
	ToAmount        string  `json:"to_amount"`
	Rate            float64 `json:"exchange_rate"`
	WalletAddress   string  `json:"wallet_address,omitempty"`
	CardNumber      string  `json:"card_number,omitempty"`
	CustomerContact string  `json:"customer_contact,omitempty"`
	PartnerID       int64   `json:"partner_id,omitempty"`
}

type createOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Error       string `json:"error"`
}

// CreateOrder registers the exchange request with the backend and returns the
// assigned order id and public order number.
func (f *OrdersHTTPFacade) CreateOrder(ctx context.Context, req *models.ExchangeRequest) (int64, string, error) {
	body := &createOrderRequest{
		Action:       "create_order",
		Direction:    string(req.Direction),
		FromCurrency: req.FromCurrency,
		FromAmount:   req.FromAmount,
		ToCurrency:   req.ToCurrency,
		ToAmount:     req.ToAmount,
		Rate:         req.Rate,
		PartnerID:    req.PartnerID,
	}

	body.WalletAddress = req.Recipient["wallet_address"]
	body.CardNumber = req.Recipient["card_number"]
	for _, field := range []string{"phone", "iban", "name"} {
		if v := req.Recipient[field]; v != "" {
			if body.CustomerContact != "" {
				body.CustomerContact += " "
			}
			body.CustomerContact += v
		}
	}

	var cr createOrderResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&cr).
		SetError(&cr).
		Post("")
	if err != nil {
		logger.Log.Errorw("create order request failed", "error", err)
		return 0, "", err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return 0, "", fmt.Errorf("order request status: %d", resp.StatusCode())
	}
	if !cr.Success {
		return 0, "", backendErr(cr.Error)
	}

	return cr.OrderID, cr.OrderNumber, nil
}

type trackClickRequest struct {
	Action       string `json:"action"`
	PartnerCode  string `json:"partner_code"`
	FromCurrency string `json:"from_currency,omitempty"`
	ToCurrency   string `json:"to_currency,omitempty"`
}

type trackClickResponse struct {
	Success   bool   `json:"success"`
	ClickID   int64  `json:"click_id"`
	PartnerID int64  `json:"partner_id"`
	Error     string `json:"error"`
}

// TrackClick records a referral visit and resolves the partner id for the code
func (f *OrdersHTTPFacade) TrackClick(ctx context.Context, partnerCode, fromCurrency, toCurrency string) (int64, error) {
	var tr trackClickResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(&trackClickRequest{
			Action:       "track_click",
			PartnerCode:  partnerCode,
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
		}).
		SetResult(&tr).
		SetError(&tr).
		Post("")
	if err != nil {
		logger.Log.Errorw("track click request failed", "partner_code", partnerCode, "error", err)
		return 0, err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return 0, fmt.Errorf("order request status: %d", resp.StatusCode())
	}
	if !tr.Success {
		return 0, backendErr(tr.Error)
	}

	return tr.PartnerID, nil
}
