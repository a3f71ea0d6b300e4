package models

// DowntimeCategory classifies a downtime reason
type DowntimeCategory string

const (
	DowntimeCategoryMechanical DowntimeCategory = "mechanical"
	DowntimeCategoryElectrical DowntimeCategory = "electrical"
	DowntimeCategoryMaterial   DowntimeCategory = "material"
	DowntimeCategoryManpower   DowntimeCategory = "manpower"
	DowntimeCategoryPlanned    DowntimeCategory = "planned"
	DowntimeCategorySoftware   DowntimeCategory = "software"
	DowntimeCategoryOther      DowntimeCategory = "other"
)

// NotificationType selects how responsible users are told about a downtime
type NotificationType string

const (
	NotificationTypeActivity NotificationType = "activity"
)

// DowntimeState is the approval workflow state of a downtime log
type DowntimeState string

const (
	DowntimeStateDraft       DowntimeState = "draft"
	DowntimeStateSubmitted   DowntimeState = "submitted"
	DowntimeStateNeedsUpdate DowntimeState = "needs_update"
	DowntimeStateApproved    DowntimeState = "approved"
)

// ActivityState tracks a scheduled to-do
type ActivityState string

const (
	ActivityStatePlanned ActivityState = "planned"
	ActivityStateDone    ActivityState = "done"
)

// ActivityType is the kind of scheduled activity
type ActivityType string

const (
	ActivityTypeTodo ActivityType = "todo"
)

// IsValid checks if the DowntimeCategory is valid
func (c DowntimeCategory) IsValid() bool {
	switch c {
	case DowntimeCategoryMechanical, DowntimeCategoryElectrical, DowntimeCategoryMaterial,
		DowntimeCategoryManpower, DowntimeCategoryPlanned, DowntimeCategorySoftware, DowntimeCategoryOther:
		return true
	}
	return false
}

// IsValid checks if the NotificationType is valid
func (n NotificationType) IsValid() bool {
	return n == NotificationTypeActivity
}

// IsValid checks if the DowntimeState is valid
func (s DowntimeState) IsValid() bool {
	switch s {
	case DowntimeStateDraft, DowntimeStateSubmitted, DowntimeStateNeedsUpdate, DowntimeStateApproved:
		return true
	}
	return false
}

// IsValid checks if the ActivityState is valid
func (s ActivityState) IsValid() bool {
	return s == ActivityStatePlanned || s == ActivityStateDone
}
