package create_mermaid

import (
	"promptshq/internal/models"
	"promptshq/internal/services"
)

type DiagramTypeItem struct {
	Value       models.DiagramType `json:"value"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

type OptionsResponse struct {
	Types []DiagramTypeItem `json:"types"`
}

type ExampleResponse struct {
	Type        models.DiagramType `json:"type"`
	Description string             `json:"description"`
}

type GenerateRequest struct {
	Description string             `json:"description"`
	Type        models.DiagramType `json:"type"`
}

// DiagramRequest saves or submits the diagram currently on the page.
type DiagramRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        models.DiagramType `json:"type"`
	Code        string             `json:"code"`
}

func (r DiagramRequest) input() services.DiagramSubmissionInput {
	return services.DiagramSubmissionInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Code:        r.Code,
	}
}

type JobResponse struct {
	Job     services.Job `json:"job"`
	Started bool         `json:"started"`
}
