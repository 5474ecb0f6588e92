package services

import (
	"context"
	"testing"

	"promptshq/internal/database"
	"promptshq/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *database.GormStore {
	t.Helper()
	store, db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

// closedModelStore reports every AI model as closed.
type closedModelStore struct {
	database.Store
}

func (s closedModelStore) GetAIModelByName(ctx context.Context, name string) (*models.AIModel, error) {
	m, err := s.Store.GetAIModelByName(ctx, name)
	if err != nil {
		return nil, err
	}
	m.Status = models.AIModelStatusClosed
	return m, nil
}
