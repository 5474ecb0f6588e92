package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"promptshq/internal/database"
	"promptshq/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll disables the type or category filter.
const FilterAll = "all"

type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortPopular SortKey = "popular"
	SortAZ      SortKey = "a-z"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortPopular, SortAZ:
		return true
	}
	return false
}

// ContentFilter is the library search configuration.
type ContentFilter struct {
	Query      string
	Type       string
	Category   string
	TechStacks []string
	Sort       SortKey
}

// NewContentFilter normalizes raw query values. Empty type and category
// mean "all", an empty sort key means newest.
func NewContentFilter(query, contentType, category string, techStacks []string, sortKey string) (ContentFilter, error) {
	f := ContentFilter{
		Query:    strings.TrimSpace(query),
		Type:     strings.TrimSpace(contentType),
		Category: strings.TrimSpace(category),
		Sort:     SortKey(strings.TrimSpace(sortKey)),
	}
	if f.Type == "" {
		f.Type = FilterAll
	}
	if f.Category == "" {
		f.Category = FilterAll
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}

	if f.Type != FilterAll && !models.ContentType(f.Type).Valid() {
		return ContentFilter{}, invalid("type", fmt.Sprintf("Unknown content type %q.", f.Type))
	}
	if f.Category != FilterAll && !models.Category(f.Category).Valid() {
		return ContentFilter{}, invalid("category", fmt.Sprintf("Unknown category %q.", f.Category))
	}
	if !f.Sort.Valid() {
		return ContentFilter{}, invalid("sort", fmt.Sprintf("Unknown sort order %q.", f.Sort))
	}
	for _, tag := range techStacks {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !models.IsTechStack(tag) {
			return ContentFilter{}, invalid("tech", fmt.Sprintf("Unknown tech stack %q.", tag))
		}
		f.TechStacks = append(f.TechStacks, tag)
	}
	return f, nil
}

// Matches is the inclusion predicate of the library view.
func (f ContentFilter) Matches(item *models.ContentItem) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Author), q) {
			return false
		}
	}
	if f.Type != "" && f.Type != FilterAll && string(item.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && string(item.Category) != f.Category {
		return false
	}
	if len(f.TechStacks) > 0 && !item.HasTech(f.TechStacks) {
		return false
	}
	return true
}

// FilterContent returns the items matching f in f.Sort order. The input
// slice is not modified and ties keep their input order.
func FilterContent(items []models.ContentItem, f ContentFilter) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for i := range items {
		if f.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}

	switch f.Sort {
	case SortNewest, "":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedDate.After(out[j].CreatedDate)
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortAZ:
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}

// CatalogStats feeds the home page counters.
type CatalogStats struct {
	TotalItems    int                        `json:"totalItems"`
	ByType        map[models.ContentType]int `json:"byType"`
	AverageRating float64                    `json:"averageRating"`
	Authors       int                        `json:"authors"`
	Categories    int                        `json:"categories"`
}

type CatalogService struct {
	store database.Store
}

func NewCatalogService(store database.Store) *CatalogService {
	return &CatalogService{store: store}
}

// Search runs FilterContent over the whole catalog.
func (s *CatalogService) Search(ctx context.Context, f ContentFilter) ([]models.ContentItem, error) {
	items, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return FilterContent(items, f), nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.ContentItem, error) {
	return s.store.GetContent(ctx, id)
}

func (s *CatalogService) Stats(ctx context.Context) (*CatalogStats, error) {
	items, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	stats := &CatalogStats{
		TotalItems: len(items),
		ByType:     make(map[models.ContentType]int, len(models.ContentTypes)),
	}
	for _, t := range models.ContentTypes {
		stats.ByType[t] = 0
	}
	authors := make(map[string]struct{})
	categories := make(map[models.Category]struct{})
	var ratingSum float64
	for _, item := range items {
		stats.ByType[item.Type]++
		authors[item.Author] = struct{}{}
		categories[item.Category] = struct{}{}
		ratingSum += item.Rating
	}
	stats.Authors = len(authors)
	stats.Categories = len(categories)
	if len(items) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(items))*10) / 10
	}
	return stats, nil
}
