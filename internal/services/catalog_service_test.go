package services

import (
	"context"
	"testing"
	"time"

	"promptshq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, title string, created string) models.ContentItem {
	d, _ := time.Parse("2006-01-02", created)
	return models.ContentItem{
		ID:          id,
		Type:        models.ContentTypePrompt,
		Title:       title,
		Description: title + " description",
		Author:      "author" + id,
		Category:    models.CategoryDevelopment,
		CreatedDate: d,
		LastEdited:  d,
	}
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilterContentNewestOrder(t *testing.T) {
	items := []models.ContentItem{
		item("a", "A", "2024-01-10"),
		item("b", "B", "2024-01-05"),
		item("c", "C", "2024-01-15"),
	}

	out := FilterContent(items, ContentFilter{Sort: SortNewest})
	assert.Equal(t, []string{"c", "a", "b"}, ids(out))

	// Input order does not matter
	reversed := []models.ContentItem{items[2], items[1], items[0]}
	assert.Equal(t, []string{"c", "a", "b"}, ids(FilterContent(reversed, ContentFilter{Sort: SortNewest})))

	// Input is left alone
	assert.Equal(t, "a", items[0].ID)
}

func TestFilterContentAZIsCaseInsensitive(t *testing.T) {
	items := []models.ContentItem{
		item("1", "Database Guide", "2024-01-01"),
		item("2", "api Tool", "2024-01-02"),
		item("3", "Zebra", "2024-01-03"),
	}
	out := FilterContent(items, ContentFilter{Sort: SortAZ})
	assert.Equal(t, []string{"2", "1", "3"}, ids(out))
}

func TestFilterContentPopularIsStable(t *testing.T) {
	items := []models.ContentItem{
		item("1", "One", "2024-01-01"),
		item("2", "Two", "2024-01-02"),
		item("3", "Three", "2024-01-03"),
	}
	items[0].Rating = 4.5
	items[1].Rating = 4.9
	items[2].Rating = 4.5
	out := FilterContent(items, ContentFilter{Sort: SortPopular})
	assert.Equal(t, []string{"2", "1", "3"}, ids(out))
}

func TestFilterContentSoundAndComplete(t *testing.T) {
	store := setupTestStore(t)
	all, err := store.ListContent(context.Background())
	require.NoError(t, err)

	filters := []ContentFilter{
		{},
		{Query: "assistant"},
		{Query: "DBEXPERT"},
		{Type: string(models.ContentTypeInstructions)},
		{Category: string(models.CategorySecurity)},
		{TechStacks: []string{"Docker", "PostgreSQL"}},
		{Query: "o", Type: FilterAll, Category: FilterAll, TechStacks: []string{"Node.js"}, Sort: SortAZ},
		{Query: "nothing matches this"},
	}
	for _, f := range filters {
		out := FilterContent(all, f)
		included := make(map[string]bool, len(out))
		for i := range out {
			assert.True(t, f.Matches(&out[i]), "included item %s must match %+v", out[i].ID, f)
			included[out[i].ID] = true
		}
		for i := range all {
			if !included[all[i].ID] {
				assert.False(t, f.Matches(&all[i]), "excluded item %s must not match %+v", all[i].ID, f)
			}
		}
	}
}

func TestFilterContentPredicates(t *testing.T) {
	store := setupTestStore(t)
	all, err := store.ListContent(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter ContentFilter
		want   []string
	}{
		{"all newest", ContentFilter{Sort: SortNewest}, []string{"1", "6", "4", "2", "5", "3"}},
		{"author search", ContentFilter{Query: "docmaster"}, []string{"2"}},
		{"description search is case-insensitive", ContentFilter{Query: "SECURITY"}, []string{"6", "5"}},
		{"type", ContentFilter{Type: "bundle"}, []string{"3"}},
		{"category", ContentFilter{Category: "DevOps"}, []string{"6"}},
		{"tech intersection", ContentFilter{TechStacks: []string{"MongoDB", "Docker"}, Sort: SortNewest}, []string{"6", "4"}},
		{"a-z", ContentFilter{Type: "prompt", Sort: SortAZ}, []string{"4", "6", "1"}},
		{"popular", ContentFilter{Type: "instructions", Sort: SortPopular}, []string{"2", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterContent(all, tt.filter)))
		})
	}
}

func TestNewContentFilter(t *testing.T) {
	f, err := NewContentFilter("  react ", "", "", []string{"React", " "}, "")
	require.NoError(t, err)
	assert.Equal(t, "react", f.Query)
	assert.Equal(t, FilterAll, f.Type)
	assert.Equal(t, FilterAll, f.Category)
	assert.Equal(t, SortNewest, f.Sort)
	assert.Equal(t, []string{"React"}, f.TechStacks)

	_, err = NewContentFilter("", "video", "", nil, "")
	assert.True(t, IsValidation(err))
	_, err = NewContentFilter("", "", "Gardening", nil, "")
	assert.True(t, IsValidation(err))
	_, err = NewContentFilter("", "", "", []string{"Cobol"}, "")
	assert.True(t, IsValidation(err))
	_, err = NewContentFilter("", "", "", nil, "oldest")
	assert.True(t, IsValidation(err))
}

func TestCatalogServiceStats(t *testing.T) {
	svc := NewCatalogService(setupTestStore(t))
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalItems)
	assert.Equal(t, 3, stats.ByType[models.ContentTypePrompt])
	assert.Equal(t, 2, stats.ByType[models.ContentTypeInstructions])
	assert.Equal(t, 1, stats.ByType[models.ContentTypeBundle])
	assert.Equal(t, 4.7, stats.AverageRating)
	assert.Equal(t, 6, stats.Authors)

	found, err := svc.Search(ctx, ContentFilter{Query: "optimiz", Sort: SortAZ})
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "6"}, ids(found))

	got, err := svc.Get(ctx, "3")
	require.NoError(t, err)
	assert.True(t, got.IsBundle)
}
