package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// PartnerAuthHTTPFacade talks to the external partner authentication backend.
// The backend multiplexes register, login and password change over a single
// POST endpoint switched by the action field.
type PartnerAuthHTTPFacade struct {
	client *resty.Client
}

// NewPartnerAuthHTTPFacade creates a facade pointed at the auth API base URL.
func NewPartnerAuthHTTPFacade(baseURL string) *PartnerAuthHTTPFacade {
	return &PartnerAuthHTTPFacade{
		client: resty.New().SetBaseURL(baseURL),
	}
}

type authRequest struct {
	Action      string `json:"action"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	OldPassword string `json:"old_password,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
	PartnerID   int64  `json:"partner_id,omitempty"`
	Token       string `json:"token,omitempty"`
}

type authResponse struct {
	Success        bool    `json:"success"`
	PartnerID      int64   `json:"partner_id"`
	Email          string  `json:"email"`
	PartnerCode    string  `json:"partner_code"`
	Balance        float64 `json:"balance"`
	CommissionRate float64 `json:"commission_rate"`
	Token          string  `json:"token"`
	Error          string  `json:"error"`
}

func (f *PartnerAuthHTTPFacade) post(ctx context.Context, req *authRequest) (*authResponse, error) {
	var ar authResponse

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&ar).
		SetError(&ar).
		Post("")
	if err != nil {
		logger.Log.Errorw("partner auth request failed", "action", req.Action, "error", err)
		return nil, err
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return nil, fmt.Errorf("partner auth request status: %d", resp.StatusCode())
	}
	if !ar.Success {
		return nil, backendErr(ar.Error)
	}

	return &ar, nil
}

func identityFromResponse(ar *authResponse) *models.PartnerIdentity {
	return &models.PartnerIdentity{
		PartnerID:      ar.PartnerID,
		Email:          ar.Email,
		PartnerCode:    ar.PartnerCode,
		Balance:        ar.Balance,
		CommissionRate: ar.CommissionRate,
		BackendToken:   ar.Token,
	}
}

// Register creates a new partner account
func (f *PartnerAuthHTTPFacade) Register(ctx context.Context, email, password string) (*models.PartnerIdentity, error) {
	ar, err := f.post(ctx, &authRequest{
		Action:   "register",
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return identityFromResponse(ar), nil
}

// Login authenticates an existing partner
func (f *PartnerAuthHTTPFacade) Login(ctx context.Context, email, password string) (*models.PartnerIdentity, error) {
	ar, err := f.post(ctx, &authRequest{
		Action:   "login",
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return identityFromResponse(ar), nil
}

// ChangePassword updates the partner password
func (f *PartnerAuthHTTPFacade) ChangePassword(ctx context.Context, partnerID int64, oldPassword, newPassword string) error {
	_, err := f.post(ctx, &authRequest{
		Action:      "change_password",
		PartnerID:   partnerID,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	return err
}
