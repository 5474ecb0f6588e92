package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"promptshq/internal/database"
	"promptshq/internal/models"
)

const (
	JobKindEnhance = "enhance"
	JobKindDiagram = "diagram"
)

type EnhanceInput struct {
	Prompt       string
	Model        string
	Enhancements []models.EnhancementOption
}

type DiagramInput struct {
	Description string
	Type        models.DiagramType
}

// GenerationService runs the generators behind a simulated remote call.
type GenerationService struct {
	runner       *JobRunner
	store        database.Store
	cache        GenerationCache
	enhanceDelay time.Duration
	diagramDelay time.Duration
}

func NewGenerationService(runner *JobRunner, store database.Store, cache GenerationCache, enhanceDelay, diagramDelay time.Duration) *GenerationService {
	if cache == nil {
		cache = NoopGenerationCache
	}
	return &GenerationService{
		runner:       runner,
		store:        store,
		cache:        cache,
		enhanceDelay: enhanceDelay,
		diagramDelay: diagramDelay,
	}
}

// StartEnhance validates the input and schedules an enhancement for the
// session. Input errors are returned at once, before any job exists.
func (s *GenerationService) StartEnhance(ctx context.Context, session string, in EnhanceInput) (Job, bool, error) {
	if _, err := EnhancePrompt(in.Prompt, in.Model, in.Enhancements); err != nil {
		return Job{}, false, err
	}
	if err := s.checkModel(ctx, in.Model); err != nil {
		return Job{}, false, err
	}

	parts := []string{in.Prompt, in.Model}
	for _, o := range in.Enhancements {
		parts = append(parts, string(o))
	}
	key := GenerationCacheKey(JobKindEnhance, parts...)
	produce := cachedProducer(s.cache, key, func() (string, error) {
		return EnhancePrompt(in.Prompt, in.Model, in.Enhancements)
	})
	return s.runner.Trigger(triggerKey(session, JobKindEnhance), JobKindEnhance, s.enhanceDelay, produce)
}

// StartDiagram schedules a diagram generation for the session.
func (s *GenerationService) StartDiagram(_ context.Context, session string, in DiagramInput) (Job, bool, error) {
	if _, err := GenerateDiagram(in.Description, in.Type); err != nil {
		return Job{}, false, err
	}

	key := GenerationCacheKey(JobKindDiagram, string(in.Type))
	produce := cachedProducer(s.cache, key, func() (string, error) {
		return GenerateDiagram(in.Description, in.Type)
	})
	return s.runner.Trigger(triggerKey(session, JobKindDiagram), JobKindDiagram, s.diagramDelay, produce)
}

func (s *GenerationService) Job(id string) (Job, error) {
	return s.runner.Get(id)
}

func (s *GenerationService) CancelJob(id string) (Job, error) {
	return s.runner.Cancel(id)
}

func (s *GenerationService) checkModel(ctx context.Context, name string) error {
	m, err := s.store.GetAIModelByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, database.ErrNotFound) {
		return invalid("model", fmt.Sprintf("Unknown AI model %q.", name))
	}
	if err != nil {
		return fmt.Errorf("look up ai model: %w", err)
	}
	if m.Status != models.AIModelStatusOpen {
		return invalid("model", fmt.Sprintf("AI model %q is not available.", name))
	}
	return nil
}

func triggerKey(session, kind string) string {
	return session + ":" + kind
}
