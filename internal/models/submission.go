package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionStatusPending      SubmissionStatus = "pending"
	SubmissionStatusApproved     SubmissionStatus = "approved"
	SubmissionStatusRejected     SubmissionStatus = "rejected"
	SubmissionStatusNeedsChanges SubmissionStatus = "needs-changes"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected, SubmissionStatusNeedsChanges:
		return true
	}
	return false
}

// Submission is an entry sent for review. Review transitions are not
// modelled; fixture submissions carry their final state.
type Submission struct {
	ID            string           `gorm:"primarykey" json:"id" validate:"required"`
	Title         string           `gorm:"not null" json:"title" validate:"required"`
	Status        SubmissionStatus `gorm:"index;not null;default:'pending'" json:"status" validate:"required,submission_status"`
	SubmittedDate time.Time        `gorm:"index" json:"submittedDate" validate:"required"`
	ReviewDate    *time.Time       `json:"reviewDate,omitempty"`
	Feedback      string           `json:"feedback,omitempty"`

	// Set for submissions created through the API.
	Description string                      `json:"description,omitempty"`
	Category    Category                    `json:"category,omitempty" validate:"omitempty,category"`
	Type        ContentType                 `json:"type,omitempty" validate:"omitempty,content_type"`
	Content     string                      `gorm:"type:text" json:"content,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags,omitempty" validate:"max=10,dive,required"`
}

func (Submission) TableName() string {
	return "submissions"
}
