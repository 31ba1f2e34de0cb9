package types

import (
	"time"

	"github.com/google/uuid"
)

// Objective is a user-defined life goal. Rows are never removed: Delete
// flips IsActive to false so historical decision references stay resolvable.
type Objective struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Importance  int       `gorm:"column:importance;not null" json:"importance"`
	Horizon     string    `gorm:"column:horizon;not null" json:"horizon"`
	Type        string    `gorm:"column:type;not null" json:"type"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Objective) TableName() string {
	return "objective"
}

// ObjectiveInput carries the five mutable objective fields. The same body
// shape is used for create and full-replace update.
type ObjectiveInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Importance  int    `json:"importance" binding:"required"`
	Horizon     string `json:"horizon" binding:"required"`
	Type        string `json:"type" binding:"required"`
}
