package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidations adds the enum tags used by the model structs and the
// request DTOs to v.
func RegisterValidations(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"content_type": func(fl validator.FieldLevel) bool {
			return ContentType(fl.Field().String()).Valid()
		},
		"category": func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		},
		"tech_stack": func(fl validator.FieldLevel) bool {
			return IsTechStack(fl.Field().String())
		},
		"submission_status": func(fl validator.FieldLevel) bool {
			return SubmissionStatus(fl.Field().String()).Valid()
		},
		"enhancement": func(fl validator.FieldLevel) bool {
			return EnhancementOption(fl.Field().String()).Valid()
		},
		"diagram_type": func(fl validator.FieldLevel) bool {
			return DiagramType(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validation: %w", tag, err)
		}
	}
	return nil
}

// ErrBundleMismatch is returned when the bundle flag disagrees with the type.
var ErrBundleMismatch = errors.New("bundle flag requires type bundle")

// ValidateContentItem checks that type, category and every tech stack tag
// come from the fixed vocabularies.
func ValidateContentItem(item *ContentItem) error {
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("content item %q: %w", item.ID, err)
	}
	if item.IsBundle && item.Type != ContentTypeBundle {
		return fmt.Errorf("content item %q: %w", item.ID, ErrBundleMismatch)
	}
	if len(item.BundleItems) > 0 && !item.IsBundle {
		return fmt.Errorf("content item %q: bundle items set on a non-bundle: %w", item.ID, ErrBundleMismatch)
	}
	return nil
}

func ValidateSubmission(s *Submission) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("submission %q: %w", s.ID, err)
	}
	return nil
}

func ValidateDraft(d *Draft) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("draft %q: %w", d.ID, err)
	}
	return nil
}

func ValidateAIModel(m *AIModel) error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("ai model %q: %w", m.Name, err)
	}
	return nil
}
