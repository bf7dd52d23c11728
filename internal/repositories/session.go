package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mkurbatov/gw-exchange-front/internal/logger"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// SessionRepository stores partner sessions in Redis. A token presented by a
// client is only honored while the matching session record exists, so logout
// simply removes the record.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionRepository creates a new repository instance with the given TTL
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(partnerID int64) string {
	return fmt.Sprintf("partner_session:%d", partnerID)
}

// Save writes the partner session with expiration
func (r *SessionRepository) Save(ctx context.Context, session *models.PartnerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.PartnerID)
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Load returns the stored session, or nil when none exists
func (r *SessionRepository) Load(ctx context.Context, partnerID int64) (*models.PartnerSession, error) {
	key := sessionKey(partnerID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var session models.PartnerSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Clear removes the partner session
func (r *SessionRepository) Clear(ctx context.Context, partnerID int64) error {
	key := sessionKey(partnerID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
