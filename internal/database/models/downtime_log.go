package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResModelDowntimeLog identifies downtime logs in messages, activities and attachments
const ResModelDowntimeLog = "downtime_log"

// Tracked field names. A change to any of them after submission sends the
// log back for update while it is unlocked.
const (
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldReason          = "reason"
	FieldDescription     = "description"
	FieldProductionOrder = "production_order"
)

var trackedFields = map[string]struct{}{
	FieldStartTime:       {},
	FieldEndTime:         {},
	FieldReason:          {},
	FieldDescription:     {},
	FieldProductionOrder: {},
}

// DowntimeLog records one production stoppage and its approval state
type DowntimeLog struct {
	BaseModel
	Reference         string        `json:"reference" gorm:"uniqueIndex;not null;size:64"`
	ProductionOrderID *uuid.UUID    `json:"production_order_id,omitempty" gorm:"type:uuid;index"`
	StartTime         time.Time     `json:"start_time" gorm:"not null" validate:"required"`
	EndTime           time.Time     `json:"end_time" gorm:"not null" validate:"required"`
	DurationMinutes   float64       `json:"duration_minutes" gorm:"not null;default:0"`
	ReasonID          uuid.UUID     `json:"reason_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReportedByID      uuid.UUID     `json:"reported_by_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description       string        `json:"description" gorm:"type:text"`
	State             DowntimeState `json:"state" gorm:"type:varchar(30);not null;default:'draft';index"`
	IsEditable        bool          `json:"is_editable" gorm:"not null"`
	WasSubmitted      bool          `json:"was_submitted" gorm:"not null"`

	// Relationships
	ProductionOrder *ProductionOrder `json:"production_order,omitempty" gorm:"foreignKey:ProductionOrderID"`
	Reason          DowntimeReason   `json:"reason,omitempty" gorm:"foreignKey:ReasonID"`
	ReportedBy      User             `json:"reported_by,omitempty" gorm:"foreignKey:ReportedByID"`
}

// TableName returns the table name for DowntimeLog
func (DowntimeLog) TableName() string {
	return "downtime_logs"
}

// BeforeSave keeps the stored duration in sync with the timestamps
func (l *DowntimeLog) BeforeSave(tx *gorm.DB) error {
	l.ComputeDuration()
	return nil
}

// DurationMinutesBetween returns end minus start in fractional minutes, or 0
// when either timestamp is missing. Negative results are returned as is.
func DurationMinutesBetween(start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return end.Sub(start).Minutes()
}

// ComputeDuration refreshes DurationMinutes from the timestamps
func (l *DowntimeLog) ComputeDuration() {
	l.DurationMinutes = DurationMinutesBetween(l.StartTime, l.EndTime)
}

// NewDowntimeLog returns a draft log reported by reporterID
func NewDowntimeLog(reporterID uuid.UUID) *DowntimeLog {
	return &DowntimeLog{
		ReportedByID: reporterID,
		State:        DowntimeStateDraft,
		IsEditable:   true,
		WasSubmitted: false,
	}
}

// IsReporter reports whether userID created the log
func (l *DowntimeLog) IsReporter(userID uuid.UUID) bool {
	return userID != uuid.Nil && l.ReportedByID == userID
}

// IsResponsible reports whether userID is responsible for the log's reason
func (l *DowntimeLog) IsResponsible(userID uuid.UUID) bool {
	return l.Reason.IsResponsible(userID)
}

// Category mirrors the reason's category
func (l *DowntimeLog) Category() DowntimeCategory {
	return l.Reason.Category
}

// MarkSubmitted moves the log to submitted and locks it
func (l *DowntimeLog) MarkSubmitted() {
	l.State = DowntimeStateSubmitted
	l.IsEditable = false
	l.WasSubmitted = true
}

// Unlock makes the log editable again
func (l *DowntimeLog) Unlock() {
	l.IsEditable = true
}

// Lock makes the log read-only without changing state
func (l *DowntimeLog) Lock() {
	l.IsEditable = false
}

// MarkApproved moves the log to approved and locks it
func (l *DowntimeLog) MarkApproved() {
	l.State = DowntimeStateApproved
	l.IsEditable = false
}

// DowntimeLogChanges holds a partial field write. Nil pointers are untouched.
type DowntimeLogChanges struct {
	StartTime         *time.Time
	EndTime           *time.Time
	ReasonID          *uuid.UUID
	Description       *string
	ProductionOrderID *uuid.UUID
	ClearOrder        bool
}

// Apply writes the changes and returns the names of the fields whose value
// actually changed
func (l *DowntimeLog) Apply(c DowntimeLogChanges) []string {
	var changed []string

	if c.StartTime != nil && !c.StartTime.Equal(l.StartTime) {
		l.StartTime = *c.StartTime
		changed = append(changed, FieldStartTime)
	}
	if c.EndTime != nil && !c.EndTime.Equal(l.EndTime) {
		l.EndTime = *c.EndTime
		changed = append(changed, FieldEndTime)
	}
	if c.ReasonID != nil && *c.ReasonID != l.ReasonID {
		l.ReasonID = *c.ReasonID
		l.Reason = DowntimeReason{}
		changed = append(changed, FieldReason)
	}
	if c.Description != nil && *c.Description != l.Description {
		l.Description = *c.Description
		changed = append(changed, FieldDescription)
	}
	switch {
	case c.ClearOrder:
		if l.ProductionOrderID != nil {
			l.ProductionOrderID = nil
			l.ProductionOrder = nil
			changed = append(changed, FieldProductionOrder)
		}
	case c.ProductionOrderID != nil:
		if l.ProductionOrderID == nil || *l.ProductionOrderID != *c.ProductionOrderID {
			id := *c.ProductionOrderID
			l.ProductionOrderID = &id
			l.ProductionOrder = nil
			changed = append(changed, FieldProductionOrder)
		}
	}

	l.ComputeDuration()
	return changed
}

// FlagForResubmission sets state to needs_update when a submitted, unlocked
// log had a tracked field changed. It returns true when the state moved.
func (l *DowntimeLog) FlagForResubmission(changed []string) bool {
	if !l.WasSubmitted || l.State != DowntimeStateSubmitted || !l.IsEditable {
		return false
	}
	for _, f := range changed {
		if _, ok := trackedFields[f]; ok {
			l.State = DowntimeStateNeedsUpdate
			return true
		}
	}
	return false
}
