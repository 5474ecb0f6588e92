package services

import (
	"context"
	"fmt"
	"strings"

	"promptshq/internal/database"
	"promptshq/internal/models"
)

type AIModelFilter struct {
	Name   string
	Status string
}

// AIModelService lists the target models offered by the prompt enhancer.
type AIModelService struct {
	store database.Store
}

func NewAIModelService(store database.Store) *AIModelService {
	return &AIModelService{store: store}
}

// FindAIModels returns catalog models matching the filter, in catalog order.
// Name matches as a case-insensitive substring.
func (s *AIModelService) FindAIModels(ctx context.Context, filter AIModelFilter) ([]models.AIModel, error) {
	status := models.AIModelStatus(strings.TrimSpace(filter.Status))
	if status != "" && !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("Unknown model status %q.", filter.Status))
	}

	all, err := s.store.ListAIModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ai models: %w", err)
	}

	name := strings.ToLower(strings.TrimSpace(filter.Name))
	out := make([]models.AIModel, 0, len(all))
	for _, m := range all {
		if name != "" && !strings.Contains(strings.ToLower(m.Name), name) {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// OpenModelNames returns the names shown in the enhancer's model picker.
func (s *AIModelService) OpenModelNames(ctx context.Context) ([]string, error) {
	open, err := s.FindAIModels(ctx, AIModelFilter{Status: string(models.AIModelStatusOpen)})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(open))
	for i, m := range open {
		names[i] = m.Name
	}
	return names, nil
}
