package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"promptshq/internal/database"
	"promptshq/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MaxSubmissionTags caps the tags on one submission.
const MaxSubmissionTags = 10

type DraftInput struct {
	Title string
	Type  models.ContentType
}

type SubmissionInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Content     string
	Tags        []string
}

type EnhancedSubmissionInput struct {
	Title          string
	Description    string
	EnhancedPrompt string
}

// DiagramSubmissionInput carries a generated Mermaid diagram from the diagram page.
// Title falls back to the diagram type's label.
type DiagramSubmissionInput struct {
	Title       string
	Description string
	Type        models.DiagramType
	Code        string
}

type DashboardStats struct {
	TotalSubmissions    int `json:"totalSubmissions"`
	ApprovedSubmissions int `json:"approvedSubmissions"`
	Favorites           int `json:"favorites"`
	Drafts              int `json:"drafts"`
}

type Dashboard struct {
	Stats       DashboardStats       `json:"stats"`
	Submissions []models.Submission  `json:"submissions"`
	Favorites   []models.ContentItem `json:"favorites"`
	Drafts      []models.Draft       `json:"drafts"`
}

// WorkspaceService covers the local user's drafts, submissions, favorites
// and ratings.
type WorkspaceService struct {
	store database.Store
	now   func() time.Time
}

func NewWorkspaceService(store database.Store) *WorkspaceService {
	return &WorkspaceService{store: store, now: time.Now}
}

// SaveDraft stores the header of a draft. Only the title is required.
func (s *WorkspaceService) SaveDraft(ctx context.Context, in DraftInput) (*models.Draft, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title", "Please enter a title for your prompt.")
	}
	if in.Type == "" {
		in.Type = models.ContentTypePrompt
	}
	if !in.Type.Valid() {
		return nil, invalid("type", fmt.Sprintf("Unknown content type %q.", in.Type))
	}

	draft := &models.Draft{
		ID:         "d-" + uuid.New().String(),
		Title:      title,
		Type:       in.Type,
		LastEdited: s.now().UTC(),
	}
	if err := models.ValidateDraft(draft); err != nil {
		return nil, err
	}
	if err := s.store.CreateDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return draft, nil
}

// Submit sends a library entry for review. Fields are checked in form
// order so the first problem is reported.
func (s *WorkspaceService) Submit(ctx context.Context, in SubmissionInput) (*models.Submission, error) {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return nil, invalid("title", "Please enter a title.")
	case strings.TrimSpace(in.Description) == "":
		return nil, invalid("description", "Please enter a description.")
	case strings.TrimSpace(in.Category) == "":
		return nil, invalid("category", "Please select a category.")
	case strings.TrimSpace(in.Type) == "":
		return nil, invalid("type", "Please select a content type.")
	case strings.TrimSpace(in.Content) == "":
		return nil, invalid("content", "Please enter the content.")
	}

	category := models.Category(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return nil, invalid("category", fmt.Sprintf("Unknown category %q.", in.Category))
	}
	contentType := models.ContentType(strings.TrimSpace(in.Type))
	if !contentType.Valid() {
		return nil, invalid("type", fmt.Sprintf("Unknown content type %q.", in.Type))
	}
	tags, err := NormalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	sub := &models.Submission{
		ID:            "s-" + uuid.New().String(),
		Title:         strings.TrimSpace(in.Title),
		Status:        models.SubmissionStatusPending,
		SubmittedDate: s.now().UTC(),
		Description:   strings.TrimSpace(in.Description),
		Category:      category,
		Type:          contentType,
		Content:       in.Content,
		Tags:          tags,
	}
	return s.create(ctx, sub)
}

// SubmitEnhanced sends an enhanced prompt from the prompt enhancer.
func (s *WorkspaceService) SubmitEnhanced(ctx context.Context, in EnhancedSubmissionInput) (*models.Submission, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.EnhancedPrompt) == "" {
		return nil, invalid("form", "Please fill in all required fields.")
	}
	sub := &models.Submission{
		ID:            "s-" + uuid.New().String(),
		Title:         strings.TrimSpace(in.Title),
		Status:        models.SubmissionStatusPending,
		SubmittedDate: s.now().UTC(),
		Description:   strings.TrimSpace(in.Description),
		Type:          models.ContentTypePrompt,
		Content:       in.EnhancedPrompt,
	}
	return s.create(ctx, sub)
}

// SaveDiagramDraft keeps a generated diagram as an instructions draft.
func (s *WorkspaceService) SaveDiagramDraft(ctx context.Context, in DiagramSubmissionInput) (*models.Draft, error) {
	if err := checkDiagram(in); err != nil {
		return nil, err
	}
	return s.SaveDraft(ctx, DraftInput{Title: diagramTitle(in), Type: models.ContentTypeInstructions})
}

// SubmitDiagram sends a generated diagram to the review queue. Diagrams
// are filed as Documentation instructions tagged with their family.
func (s *WorkspaceService) SubmitDiagram(ctx context.Context, in DiagramSubmissionInput) (*models.Submission, error) {
	if err := checkDiagram(in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, invalid("description", "Please enter a description for your diagram.")
	}
	sub := &models.Submission{
		ID:            "s-" + uuid.New().String(),
		Title:         diagramTitle(in),
		Status:        models.SubmissionStatusPending,
		SubmittedDate: s.now().UTC(),
		Description:   strings.TrimSpace(in.Description),
		Category:      models.CategoryDocumentation,
		Type:          models.ContentTypeInstructions,
		Content:       in.Code,
		Tags:          datatypes.JSONSlice[string]{"mermaid", string(in.Type)},
	}
	return s.create(ctx, sub)
}

func checkDiagram(in DiagramSubmissionInput) error {
	if !in.Type.Valid() {
		return invalid("type", "Please select a diagram type.")
	}
	if strings.TrimSpace(in.Code) == "" {
		return invalid("code", "Generate a diagram first.")
	}
	return nil
}

func diagramTitle(in DiagramSubmissionInput) string {
	if title := strings.TrimSpace(in.Title); title != "" {
		return title
	}
	return in.Type.Label()
}

func (s *WorkspaceService) create(ctx context.Context, sub *models.Submission) (*models.Submission, error) {
	if err := models.ValidateSubmission(sub); err != nil {
		return nil, err
	}
	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

// NormalizeTags trims tags and drops blanks and duplicates. More than
// MaxSubmissionTags distinct tags is an error.
func NormalizeTags(tags []string) (datatypes.JSONSlice[string], error) {
	seen := make(map[string]bool, len(tags))
	var out datatypes.JSONSlice[string]
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) > MaxSubmissionTags {
		return nil, invalid("tags", fmt.Sprintf("You can add at most %d tags.", MaxSubmissionTags))
	}
	return out, nil
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (s *WorkspaceService) ToggleFavorite(ctx context.Context, contentID string) (bool, error) {
	ids, err := s.store.ListFavoriteIDs(ctx)
	if err != nil {
		return false, fmt.Errorf("list favorites: %w", err)
	}
	for _, id := range ids {
		if id == contentID {
			return false, s.store.RemoveFavorite(ctx, contentID)
		}
	}
	if err := s.store.AddFavorite(ctx, contentID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *WorkspaceService) IsFavorite(ctx context.Context, contentID string) (bool, error) {
	ids, err := s.store.ListFavoriteIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == contentID {
			return true, nil
		}
	}
	return false, nil
}

// Rate records the user's 1 to 5 star rating for an item.
func (s *WorkspaceService) Rate(ctx context.Context, contentID string, stars int) (*models.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, invalid("stars", "Rating must be between 1 and 5 stars.")
	}
	r := &models.Rating{ContentID: contentID, Stars: stars, UpdatedAt: s.now().UTC()}
	if err := s.store.SaveRating(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// UserRating returns the user's rating, or 0 when the item is unrated.
func (s *WorkspaceService) UserRating(ctx context.Context, contentID string) (int, error) {
	r, err := s.store.GetRating(ctx, contentID)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return r.Stars, nil
}

func (s *WorkspaceService) Dashboard(ctx context.Context) (*Dashboard, error) {
	subs, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	drafts, err := s.store.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	favIDs, err := s.store.ListFavoriteIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	items, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	byID := make(map[string]models.ContentItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	favorites := make([]models.ContentItem, 0, len(favIDs))
	for _, id := range favIDs {
		if item, ok := byID[id]; ok {
			favorites = append(favorites, item)
		}
	}

	approved := 0
	for _, sub := range subs {
		if sub.Status == models.SubmissionStatusApproved {
			approved++
		}
	}

	return &Dashboard{
		Stats: DashboardStats{
			TotalSubmissions:    len(subs),
			ApprovedSubmissions: approved,
			Favorites:           len(favIDs),
			Drafts:              len(drafts),
		},
		Submissions: subs,
		Favorites:   favorites,
		Drafts:      drafts,
	}, nil
}
