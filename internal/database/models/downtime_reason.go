package models

import (
	"github.com/google/uuid"
)

// DowntimeReason is a catalog entry classifying why production stopped
type DowntimeReason struct {
	BaseModel
	Name             string           `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Category         DowntimeCategory `json:"category" gorm:"type:varchar(30);not null;default:'other'" validate:"required"`
	DepartmentID     uuid.UUID        `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	NotificationType NotificationType `json:"notification_type" gorm:"type:varchar(30);not null;default:'activity'" validate:"required"`
	Active           bool             `json:"active" gorm:"not null;index"`

	// Relationships
	Department       Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	ResponsibleUsers []User     `json:"responsible_users,omitempty" gorm:"many2many:downtime_reason_responsible_users;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DowntimeReason
func (DowntimeReason) TableName() string {
	return "downtime_reasons"
}

// SetDepartment moves the reason to another department. Responsible users
// belong to the previous department and are cleared when it changes.
func (r *DowntimeReason) SetDepartment(departmentID uuid.UUID) bool {
	if r.DepartmentID == departmentID {
		return false
	}
	r.DepartmentID = departmentID
	r.Department = Department{}
	r.ResponsibleUsers = nil
	return true
}

// IsResponsible reports whether userID is one of the responsible users
func (r *DowntimeReason) IsResponsible(userID uuid.UUID) bool {
	for _, u := range r.ResponsibleUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// ResponsibleUserIDs returns the ids of the responsible users
func (r *DowntimeReason) ResponsibleUserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.ResponsibleUsers))
	for _, u := range r.ResponsibleUsers {
		ids = append(ids, u.ID)
	}
	return ids
}

// NotifiesByActivity reports whether review to-dos are scheduled for this reason
func (r *DowntimeReason) NotifiesByActivity() bool {
	return r.NotificationType == NotificationTypeActivity
}
