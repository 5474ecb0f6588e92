package models

import "time"

// Draft is a saved, unsubmitted piece of work. Only its header is kept.
type Draft struct {
	ID         string      `gorm:"primarykey" json:"id" validate:"required"`
	Title      string      `gorm:"not null" json:"title" validate:"required"`
	Type       ContentType `gorm:"not null" json:"type" validate:"required,content_type"`
	LastEdited time.Time   `gorm:"index" json:"lastEdited" validate:"required"`
}

func (Draft) TableName() string {
	return "drafts"
}

// Favorite marks a content item as favorited.
type Favorite struct {
	ContentID string    `gorm:"primarykey" json:"contentId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Rating is the local user's score for an item. It never changes the
// catalog rating of the item itself.
type Rating struct {
	ContentID string    `gorm:"primarykey" json:"contentId"`
	Stars     int       `gorm:"not null" json:"stars"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Rating) TableName() string {
	return "ratings"
}
