package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DecisionLog is the audit row written for every real completion call,
// successful or not. Fallback-mode responses never reach the API and are
// not logged.
type DecisionLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Model     string         `gorm:"column:model;not null" json:"model"`
	Prompt    string         `gorm:"column:prompt" json:"prompt"`
	Response  string         `gorm:"column:response" json:"response"`
	Success   bool           `gorm:"column:success;not null" json:"success"`
	Error     string         `gorm:"column:error" json:"error"`
	Result    datatypes.JSON `gorm:"column:result" json:"result"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (DecisionLog) TableName() string {
	return "decision_log"
}
