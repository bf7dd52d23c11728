package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSessionRepository(rdb, time.Minute)

	t.Run("Save and Load session", func(t *testing.T) {
		session := &models.PartnerSession{
			PartnerID:   42,
			PartnerCode: "BC42",
			Email:       "partner@example.com",
			CreatedAt:   time.Now().Unix(),
		}

		err := repo.Save(ctx, session)
		assert.NoError(t, err)

		got, err := repo.Load(ctx, 42)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, session.PartnerCode, got.PartnerCode)
		assert.Equal(t, session.Email, got.Email)
	})

	t.Run("Load missing session returns nil", func(t *testing.T) {
		got, err := repo.Load(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Clear removes session", func(t *testing.T) {
		session := &models.PartnerSession{PartnerID: 7, PartnerCode: "BC7"}

		err := repo.Save(ctx, session)
		assert.NoError(t, err)

		err = repo.Clear(ctx, 7)
		assert.NoError(t, err)

		got, err := repo.Load(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
