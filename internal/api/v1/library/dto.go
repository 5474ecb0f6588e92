package library

import "promptshq/internal/models"

type FilterOptions struct {
	Types      []TypeOption      `json:"types"`
	Categories []models.Category `json:"categories"`
	TechStacks []string          `json:"techStacks"`
	Sorts      []string          `json:"sorts"`
}

type TypeOption struct {
	Value models.ContentType `json:"value"`
	Label string             `json:"label"`
}

type ListResponse struct {
	Items   []models.ContentItem `json:"items"`
	Total   int                  `json:"total"`
	Options FilterOptions        `json:"options"`
}

type DetailResponse struct {
	Item        *models.ContentItem `json:"item"`
	ContentHTML string              `json:"contentHtml"`
	IsFavorite  bool                `json:"isFavorite"`
	UserRating  int                 `json:"userRating"`
}

type FavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type RatingRequest struct {
	Stars int `json:"stars" binding:"required"`
}

type RatingResponse struct {
	Stars int `json:"stars"`
}
