package ai_model

import "promptshq/internal/models"

type AIModelListItem struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.AIModelStatus `json:"status"`
}

type AIModelListResponse struct {
	Models []AIModelListItem `json:"models"`
	Total  int               `json:"total"`
}
