package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentType is the variant tag of a catalog entry.
type ContentType string

const (
	ContentTypePrompt       ContentType = "prompt"
	ContentTypeInstructions ContentType = "instructions"
	ContentTypeBundle       ContentType = "bundle"
)

// ContentTypes lists every variant in display order.
var ContentTypes = []ContentType{ContentTypePrompt, ContentTypeInstructions, ContentTypeBundle}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePrompt, ContentTypeInstructions, ContentTypeBundle:
		return true
	}
	return false
}

// Label is the plural name used by the library type filter.
func (t ContentType) Label() string {
	switch t {
	case ContentTypePrompt:
		return "Prompts"
	case ContentTypeInstructions:
		return "Instructions"
	case ContentTypeBundle:
		return "Bundles"
	}
	return string(t)
}

type Category string

const (
	CategoryDevelopment   Category = "Development"
	CategoryTesting       Category = "Testing"
	CategoryDocumentation Category = "Documentation"
	CategoryCodeReview    Category = "Code Review"
	CategoryArchitecture  Category = "Architecture"
	CategoryDebugging     Category = "Debugging"
	CategoryDevOps        Category = "DevOps"
	CategoryAPIDesign     Category = "API Design"
	CategoryDatabase      Category = "Database"
	CategorySecurity      Category = "Security"
)

var Categories = []Category{
	CategoryDevelopment,
	CategoryTesting,
	CategoryDocumentation,
	CategoryCodeReview,
	CategoryArchitecture,
	CategoryDebugging,
	CategoryDevOps,
	CategoryAPIDesign,
	CategoryDatabase,
	CategorySecurity,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDevelopment, CategoryTesting, CategoryDocumentation, CategoryCodeReview,
		CategoryArchitecture, CategoryDebugging, CategoryDevOps, CategoryAPIDesign,
		CategoryDatabase, CategorySecurity:
		return true
	}
	return false
}

// TechStacks is the fixed tag vocabulary items may be labelled with.
var TechStacks = []string{
	"React",
	"Python",
	"JavaScript",
	"TypeScript",
	"Node.js",
	"Java",
	"C#",
	"Go",
	"Rust",
	"Docker",
	"AWS",
	"GraphQL",
	"REST API",
	"MongoDB",
	"PostgreSQL",
}

func IsTechStack(tag string) bool {
	for _, known := range TechStacks {
		if tag == known {
			return true
		}
	}
	return false
}

// ContentItem is a catalog entry: a prompt, an instruction set or a bundle
// of other entries.
type ContentItem struct {
	ID          string                      `gorm:"primarykey" json:"id" validate:"required"`
	Type        ContentType                 `gorm:"index;not null" json:"type" validate:"required,content_type"`
	Title       string                      `gorm:"not null" json:"title" validate:"required"`
	Description string                      `json:"description" validate:"required"`
	Content     string                      `gorm:"type:text;not null" json:"content" validate:"required"`
	Author      string                      `gorm:"index" json:"author" validate:"required"`
	Category    Category                    `gorm:"index;not null" json:"category" validate:"required,category"`
	TechStack   datatypes.JSONSlice[string] `json:"techStack" validate:"dive,tech_stack"`
	Rating      float64                     `json:"rating" validate:"gte=0,lte=5"`
	CreatedDate time.Time                   `gorm:"index" json:"createdDate" validate:"required"`
	LastEdited  time.Time                   `json:"lastEdited" validate:"required"`
	IsBundle    bool                        `json:"isBundle,omitempty"`
	BundleItems datatypes.JSONSlice[string] `json:"bundleItems,omitempty" validate:"dive,required"`
	// Position keeps the fixture order so ties sort stably after a reload.
	Position int `gorm:"index" json:"-"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// HasTech reports whether the item is tagged with any of the given tags.
func (c *ContentItem) HasTech(tags []string) bool {
	for _, want := range tags {
		for _, have := range c.TechStack {
			if want == have {
				return true
			}
		}
	}
	return false
}
