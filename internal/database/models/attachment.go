package models

import (
	"github.com/google/uuid"
)

// Attachment is a file stored in object storage and linked to a record
type Attachment struct {
	BaseModel
	ResModel     string    `json:"res_model" gorm:"not null;size:64;index:idx_attachments_record"`
	ResID        uuid.UUID `json:"res_id" gorm:"type:uuid;not null;index:idx_attachments_record"`
	FileName     string    `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	ObjectKey    string    `json:"object_key" gorm:"not null;size:512"`
	ContentType  string    `json:"content_type" gorm:"size:128"`
	Size         int64     `json:"size"`
	UploadedByID uuid.UUID `json:"uploaded_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
