package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// MinPayoutAmount is the smallest payout request accepted, in rubles.
const MinPayoutAmount = 1000

var (
	// ErrPasswordMismatch is returned when the password confirmation differs.
	ErrPasswordMismatch = errors.New("Пароли не совпадают")
	// ErrPayoutBelowMinimum is returned on a payout request under the minimum.
	ErrPayoutBelowMinimum = errors.New("Минимальная сумма выплаты 1000 руб")
)

// PartnerAuthorizer talks to the partner authentication backend.
type PartnerAuthorizer interface {
	Register(ctx context.Context, email, password string) (*models.PartnerIdentity, error)
	Login(ctx context.Context, email, password string) (*models.PartnerIdentity, error)
	ChangePassword(ctx context.Context, partnerID int64, oldPassword, newPassword string) error
}

// PartnerStatsReader reads dashboard sections from the dashboard backend.
type PartnerStatsReader interface {
	GetStats(ctx context.Context, partnerID int64) (*models.PartnerStats, error)
	GetEarnings(ctx context.Context, partnerID int64) ([]models.PartnerEarning, error)
	GetPayouts(ctx context.Context, partnerID int64) ([]models.PartnerPayout, error)
}

// PayoutRequester submits payout requests.
type PayoutRequester interface {
	RequestPayout(ctx context.Context, partnerID int64, amount float64, method, details string) error
}

// ClickTracker records referral visits.
type ClickTracker interface {
	TrackClick(ctx context.Context, partnerCode, fromCurrency, toCurrency string) (int64, error)
}

// SessionRepo persists partner sessions.
type SessionRepo interface {
	Save(ctx context.Context, session *models.PartnerSession) error
	Load(ctx context.Context, partnerID int64) (*models.PartnerSession, error)
	Clear(ctx context.Context, partnerID int64) error
}

// JWTGenerator issues gateway session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, partnerID int64, partnerCode string) (string, error)
}

// PartnerService handles partner registration, sessions and the dashboard.
type PartnerService struct {
	auth      PartnerAuthorizer
	dashboard PartnerStatsReader
	payouts   PayoutRequester
	clicks    ClickTracker
	sessions  SessionRepo
	jwt       JWTGenerator
}

// NewPartnerService creates a new PartnerService.
func NewPartnerService(
	auth PartnerAuthorizer,
	dashboard PartnerStatsReader,
	payouts PayoutRequester,
	clicks ClickTracker,
	sessions SessionRepo,
	jwt JWTGenerator,
) *PartnerService {
	return &PartnerService{
		auth:      auth,
		dashboard: dashboard,
		payouts:   payouts,
		clicks:    clicks,
		sessions:  sessions,
		jwt:       jwt,
	}
}

// openSession issues a gateway token and records the session.
func (s *PartnerService) openSession(ctx context.Context, identity *models.PartnerIdentity) (string, error) {
	token, err := s.jwt.Generate(ctx, identity.PartnerID, identity.PartnerCode)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "partner_id", identity.PartnerID, "error", err)
		return "", err
	}

	session := &models.PartnerSession{
		PartnerID:   identity.PartnerID,
		PartnerCode: identity.PartnerCode,
		Email:       identity.Email,
		CreatedAt:   time.Now().Unix(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "partner_id", identity.PartnerID, "error", err)
		return "", err
	}

	return token, nil
}

// Register creates a partner account. The password confirmation is checked
// before any backend call is made.
func (s *PartnerService) Register(ctx context.Context, email, password, passwordConfirm string) (*models.PartnerIdentity, string, error) {
	if password != passwordConfirm {
		return nil, "", ErrPasswordMismatch
	}

	identity, err := s.auth.Register(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	return identity, token, nil
}

// Login authenticates a partner and opens a session.
func (s *PartnerService) Login(ctx context.Context, email, password string) (*models.PartnerIdentity, string, error) {
	identity, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	return identity, token, nil
}

// Logout drops the partner session, invalidating outstanding tokens.
func (s *PartnerService) Logout(ctx context.Context, partnerID int64) error {
	return s.sessions.Clear(ctx, partnerID)
}

// ChangePassword verifies the confirmation and forwards the change.
func (s *PartnerService) ChangePassword(ctx context.Context, partnerID int64, oldPassword, newPassword, newPasswordConfirm string) error {
	if newPassword != newPasswordConfirm {
		return ErrPasswordMismatch
	}
	return s.auth.ChangePassword(ctx, partnerID, oldPassword, newPassword)
}

// Dashboard loads the three dashboard sections concurrently. A failed section
// comes back empty instead of failing the whole dashboard; the first error is
// reported alongside the partial result.
func (s *PartnerService) Dashboard(ctx context.Context, partnerID int64) (*models.PartnerDashboard, error) {
	var (
		dashboard models.PartnerDashboard
		wg        sync.WaitGroup
		mu        sync.Mutex
		firstErr  error
	)

	record := func(section string, err error) {
		if err == nil {
			return
		}
		logger.Log.Errorw("failed to load dashboard section", "section", section, "partner_id", partnerID, "error", err)
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		stats, err := s.dashboard.GetStats(ctx, partnerID)
		record("stats", err)
		dashboard.Stats = stats
	}()
	go func() {
		defer wg.Done()
		earnings, err := s.dashboard.GetEarnings(ctx, partnerID)
		record("earnings", err)
		dashboard.Earnings = earnings
	}()
	go func() {
		defer wg.Done()
		payouts, err := s.dashboard.GetPayouts(ctx, partnerID)
		record("payouts", err)
		dashboard.Payouts = payouts
	}()
	wg.Wait()

	return &dashboard, firstErr
}

// RequestPayout validates the amount locally and forwards the request.
func (s *PartnerService) RequestPayout(ctx context.Context, partnerID int64, amount float64, method, details string) error {
	if amount < MinPayoutAmount {
		return ErrPayoutBelowMinimum
	}
	return s.payouts.RequestPayout(ctx, partnerID, amount, method, details)
}

// TrackClick records a referral visit and returns the resolved partner id.
func (s *PartnerService) TrackClick(ctx context.Context, partnerCode, fromCurrency, toCurrency string) (int64, error) {
	return s.clicks.TrackClick(ctx, partnerCode, fromCurrency, toCurrency)
}
