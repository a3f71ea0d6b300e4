package models

import (
	"github.com/google/uuid"
)

// Message is an audit note posted on a record's timeline
type Message struct {
	BaseModel
	ResModel string     `json:"res_model" gorm:"not null;size:64;index:idx_messages_record" validate:"required"`
	ResID    uuid.UUID  `json:"res_id" gorm:"type:uuid;not null;index:idx_messages_record" validate:"required"`
	Body     string     `json:"body" gorm:"type:text;not null" validate:"required"`
	AuthorID *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
