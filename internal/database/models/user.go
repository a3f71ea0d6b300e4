package models

import (
	"github.com/google/uuid"
)

// User is an identity that can report, review and approve downtime
type User struct {
	BaseModel
	Login        string     `json:"login" gorm:"uniqueIndex;not null;size:64" validate:"required,min=2,max=64"`
	Name         string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	Active       bool       `json:"active" gorm:"not null"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName is the name used in audit notes
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
