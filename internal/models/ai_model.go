package models

type AIModelStatus string

const (
	AIModelStatusOpen   AIModelStatus = "open"
	AIModelStatusClosed AIModelStatus = "closed"
)

func (s AIModelStatus) Valid() bool {
	switch s {
	case AIModelStatusOpen, AIModelStatusClosed:
		return true
	}
	return false
}

// AIModel is a selectable target model for the prompt enhancer.
type AIModel struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Description string        `json:"description"`
	Status      AIModelStatus `gorm:"index;not null;default:'open'" json:"status" validate:"required,oneof=open closed"`
	Position    int           `json:"-"`
}

func (AIModel) TableName() string {
	return "ai_models"
}
