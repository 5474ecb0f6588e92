// Package fixtures holds the seed data the catalog starts from. The YAML
// files are embedded in the binary and validated once at load time.
package fixtures

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"time"

	"promptshq/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

//go:embed data/*.yaml
var dataFS embed.FS

const dateLayout = "2006-01-02"

// Fixtures is the full seed set.
type Fixtures struct {
	Content     []models.ContentItem
	Submissions []models.Submission
	Drafts      []models.Draft
	Favorites   []string
	AIModels    []models.AIModel
}

type contentFile struct {
	Items []contentRecord `yaml:"items"`
}

type contentRecord struct {
	ID          string   `yaml:"id"`
	Type        string   `yaml:"type"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	TechStack   []string `yaml:"techStack"`
	Rating      float64  `yaml:"rating"`
	CreatedDate string   `yaml:"createdDate"`
	LastEdited  string   `yaml:"lastEdited"`
	IsBundle    bool     `yaml:"isBundle"`
	BundleItems []string `yaml:"bundleItems"`
}

type workspaceFile struct {
	Submissions []submissionRecord `yaml:"submissions"`
	Drafts      []draftRecord      `yaml:"drafts"`
	Favorites   []string           `yaml:"favorites"`
}

type submissionRecord struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Status        string `yaml:"status"`
	SubmittedDate string `yaml:"submittedDate"`
	ReviewDate    string `yaml:"reviewDate"`
	Feedback      string `yaml:"feedback"`
}

type draftRecord struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Type       string `yaml:"type"`
	LastEdited string `yaml:"lastEdited"`
}

type modelsFile struct {
	Models []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Status      string `yaml:"status"`
	} `yaml:"models"`
}

// Load reads the embedded seed files.
func Load() (*Fixtures, error) {
	read := func(name string) ([]byte, error) {
		data, err := dataFS.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", name, err)
		}
		return data, nil
	}
	content, err := read("content.yaml")
	if err != nil {
		return nil, err
	}
	workspace, err := read("workspace.yaml")
	if err != nil {
		return nil, err
	}
	aiModels, err := read("ai_models.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(content, workspace, aiModels)
}

// Parse decodes and validates the three fixture documents. Unknown keys,
// duplicate ids and values outside the fixed vocabularies are errors.
func Parse(content, workspace, aiModels []byte) (*Fixtures, error) {
	var cf contentFile
	if err := decodeStrict(content, &cf); err != nil {
		return nil, fmt.Errorf("decode content fixtures: %w", err)
	}
	var wf workspaceFile
	if err := decodeStrict(workspace, &wf); err != nil {
		return nil, fmt.Errorf("decode workspace fixtures: %w", err)
	}
	var mf modelsFile
	if err := decodeStrict(aiModels, &mf); err != nil {
		return nil, fmt.Errorf("decode ai model fixtures: %w", err)
	}

	fx := &Fixtures{}
	seen := make(map[string]bool)
	for i, rec := range cf.Items {
		item, err := rec.toModel(i)
		if err != nil {
			return nil, err
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate content id %q", item.ID)
		}
		seen[item.ID] = true
		fx.Content = append(fx.Content, item)
	}

	for _, rec := range wf.Submissions {
		sub, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		fx.Submissions = append(fx.Submissions, sub)
	}
	for _, rec := range wf.Drafts {
		draft, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		fx.Drafts = append(fx.Drafts, draft)
	}
	for _, id := range wf.Favorites {
		if !seen[id] {
			return nil, fmt.Errorf("favorite references unknown content id %q", id)
		}
		fx.Favorites = append(fx.Favorites, id)
	}

	for i, rec := range mf.Models {
		status := models.AIModelStatus(rec.Status)
		if status == "" {
			status = models.AIModelStatusOpen
		}
		m := models.AIModel{Name: rec.Name, Description: rec.Description, Status: status, Position: i}
		if err := models.ValidateAIModel(&m); err != nil {
			return nil, err
		}
		fx.AIModels = append(fx.AIModels, m)
	}

	return fx, nil
}

func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func (r contentRecord) toModel(position int) (models.ContentItem, error) {
	created, err := parseDate(r.CreatedDate)
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("content %q createdDate: %w", r.ID, err)
	}
	edited, err := parseDate(r.LastEdited)
	if err != nil {
		return models.ContentItem{}, fmt.Errorf("content %q lastEdited: %w", r.ID, err)
	}
	item := models.ContentItem{
		ID:          r.ID,
		Type:        models.ContentType(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Author:      r.Author,
		Category:    models.Category(r.Category),
		TechStack:   datatypes.JSONSlice[string](r.TechStack),
		Rating:      r.Rating,
		CreatedDate: created,
		LastEdited:  edited,
		IsBundle:    r.IsBundle,
		Position:    position,
	}
	if len(r.BundleItems) > 0 {
		item.BundleItems = datatypes.JSONSlice[string](r.BundleItems)
	}
	if err := models.ValidateContentItem(&item); err != nil {
		return models.ContentItem{}, err
	}
	return item, nil
}

func (r submissionRecord) toModel() (models.Submission, error) {
	submitted, err := parseDate(r.SubmittedDate)
	if err != nil {
		return models.Submission{}, fmt.Errorf("submission %q submittedDate: %w", r.ID, err)
	}
	sub := models.Submission{
		ID:            r.ID,
		Title:         r.Title,
		Status:        models.SubmissionStatus(r.Status),
		SubmittedDate: submitted,
		Feedback:      r.Feedback,
	}
	if strings.TrimSpace(r.ReviewDate) != "" {
		reviewed, err := parseDate(r.ReviewDate)
		if err != nil {
			return models.Submission{}, fmt.Errorf("submission %q reviewDate: %w", r.ID, err)
		}
		sub.ReviewDate = &reviewed
	}
	if err := models.ValidateSubmission(&sub); err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

func (r draftRecord) toModel() (models.Draft, error) {
	edited, err := parseDate(r.LastEdited)
	if err != nil {
		return models.Draft{}, fmt.Errorf("draft %q lastEdited: %w", r.ID, err)
	}
	draft := models.Draft{
		ID:         r.ID,
		Title:      r.Title,
		Type:       models.ContentType(r.Type),
		LastEdited: edited,
	}
	if err := models.ValidateDraft(&draft); err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
