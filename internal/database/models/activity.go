package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a to-do scheduled for a user against a record
type Activity struct {
	BaseModel
	ResModel     string        `json:"res_model" gorm:"not null;size:64;index:idx_activities_record" validate:"required"`
	ResID        uuid.UUID     `json:"res_id" gorm:"type:uuid;not null;index:idx_activities_record" validate:"required"`
	UserID       uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActivityType ActivityType  `json:"activity_type" gorm:"type:varchar(30);not null;default:'todo'"`
	Summary      string        `json:"summary" gorm:"not null;size:200" validate:"required,max=200"`
	Note         string        `json:"note" gorm:"type:text"`
	State        ActivityState `json:"state" gorm:"type:varchar(30);not null;default:'planned';index"`
	DueDate      time.Time     `json:"due_date" gorm:"type:date;not null"`
	DoneAt       *time.Time    `json:"done_at,omitempty"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// MarkDone completes the activity at the given time
func (a *Activity) MarkDone(at time.Time) {
	a.State = ActivityStateDone
	a.DoneAt = &at
}
