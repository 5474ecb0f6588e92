package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"promptshq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *GormStore {
	t.Helper()
	store, db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store
}

func TestStoreSeededContent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	items, err := store.ListContent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 6)
	for i, item := range items {
		assert.Equal(t, i, item.Position)
	}
	assert.Equal(t, []string{"React", "TypeScript", "JavaScript"}, []string(items[0].TechStack))
	assert.Equal(t, []string{"Frontend Component Generator", "Backend API Builder", "Database Schema Designer", "Test Case Creator"}, []string(items[2].BundleItems))

	item, err := store.GetContent(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Database Query Optimizer", item.Title)

	_, err = store.GetContent(ctx, "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSubmissionsAndDrafts(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	subs, err := store.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "s1", subs[0].ID)

	err = store.CreateSubmission(ctx, &models.Submission{
		ID:            "s4",
		Title:         "Go Error Wrapping",
		Status:        models.SubmissionStatusPending,
		SubmittedDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Tags:          []string{"Go"},
	})
	require.NoError(t, err)

	subs, err = store.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 4)
	assert.Equal(t, "s4", subs[0].ID)
	assert.Equal(t, []string{"Go"}, []string(subs[0].Tags))

	err = store.CreateDraft(ctx, &models.Draft{ID: "d3", Title: "Kafka Consumer Tips", Type: models.ContentTypePrompt, LastEdited: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	drafts, err := store.ListDrafts(ctx)
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, "d3", drafts[0].ID)
}

func TestStoreFavorites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	ids, err := store.ListFavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, ids)

	require.NoError(t, store.AddFavorite(ctx, "3"))
	require.NoError(t, store.AddFavorite(ctx, "3"))
	require.NoError(t, store.RemoveFavorite(ctx, "1"))

	ids, err = store.ListFavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "3"}, ids)

	assert.ErrorIs(t, store.AddFavorite(ctx, "missing"), ErrNotFound)
}

func TestStoreRatingsAndModels(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRating(ctx, &models.Rating{ContentID: "1", Stars: 3}))
	require.NoError(t, store.SaveRating(ctx, &models.Rating{ContentID: "1", Stars: 5}))
	r, err := store.GetRating(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 5, r.Stars)

	item, err := store.GetContent(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 4.8, item.Rating)

	assert.ErrorIs(t, store.SaveRating(ctx, &models.Rating{ContentID: "nope", Stars: 1}), ErrNotFound)

	list, err := store.ListAIModels(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)
	assert.Equal(t, "GPT-4", list[0].Name)
	assert.Equal(t, "Custom Model", list[7].Name)

	m, err := store.GetAIModelByName(ctx, "Gemini Flash")
	require.NoError(t, err)
	assert.Equal(t, models.AIModelStatusOpen, m.Status)

	_, err = store.GetAIModelByName(ctx, "HAL 9000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenFileDatabaseTwice(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	store, db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.AddFavorite(ctx, "4"))
	require.NoError(t, store.CreateDraft(ctx, &models.Draft{
		ID:         "d-restart",
		Title:      "Survives Restart",
		Type:       models.ContentTypePrompt,
		LastEdited: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	store, db, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	items, err := store.ListContent(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 6)

	favs, err := store.ListFavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, favs, "4")

	drafts, err := store.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d-restart", drafts[0].ID)
}
