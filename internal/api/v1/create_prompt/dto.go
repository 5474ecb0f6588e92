package create_prompt

import (
	"promptshq/internal/models"
	"promptshq/internal/services"
)

type EnhancementOptionItem struct {
	Value       models.EnhancementOption `json:"value"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
}

type OptionsResponse struct {
	Models       []string                `json:"models"`
	Enhancements []EnhancementOptionItem `json:"enhancements"`
	ContentTypes []models.ContentType    `json:"contentTypes"`
	Categories   []models.Category       `json:"categories"`
}

type EnhanceRequest struct {
	Prompt       string                     `json:"prompt"`
	Model        string                     `json:"model"`
	Enhancements []models.EnhancementOption `json:"enhancements"`
}

type DraftRequest struct {
	Title string             `json:"title"`
	Type  models.ContentType `json:"type" binding:"omitempty,content_type"`
}

type SubmitRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	EnhancedPrompt string `json:"enhancedPrompt"`
}

// JobResponse is returned when an async generation is triggered.
type JobResponse struct {
	Job     services.Job `json:"job"`
	Started bool         `json:"started"`
}
