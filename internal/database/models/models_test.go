package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDowntimeState_IsValid(t *testing.T) {
	for _, s := range []DowntimeState{DowntimeStateDraft, DowntimeStateSubmitted, DowntimeStateNeedsUpdate, DowntimeStateApproved} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, DowntimeState("cancelled").IsValid())
	assert.False(t, DowntimeState("").IsValid())
}

func TestDowntimeCategory_IsValid(t *testing.T) {
	assert.True(t, DowntimeCategoryMechanical.IsValid())
	assert.True(t, DowntimeCategoryOther.IsValid())
	assert.False(t, DowntimeCategory("weather").IsValid())
}

func TestNotificationType_IsValid(t *testing.T) {
	assert.True(t, NotificationTypeActivity.IsValid())
	assert.False(t, NotificationType("email").IsValid())
}

func TestDowntimeReason_SetDepartment(t *testing.T) {
	dept := uuid.New()
	r := &DowntimeReason{
		DepartmentID:     dept,
		ResponsibleUsers: []User{{BaseModel: BaseModel{ID: uuid.New()}}},
	}

	assert.False(t, r.SetDepartment(dept))
	assert.Len(t, r.ResponsibleUsers, 1)

	other := uuid.New()
	assert.True(t, r.SetDepartment(other))
	assert.Equal(t, other, r.DepartmentID)
	assert.Empty(t, r.ResponsibleUsers)
	assert.Empty(t, r.ResponsibleUserIDs())
}

func TestSequence_Advance(t *testing.T) {
	s := &Sequence{Prefix: "DT/", Padding: 5, NumberNext: 1, Increment: 1}

	assert.Equal(t, "DT/00001", s.Advance())
	assert.Equal(t, "DT/00002", s.Advance())
	assert.Equal(t, int64(3), s.NumberNext)

	s.NumberNext = 123456
	assert.Equal(t, "DT/123456", s.Advance())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{Login: "jdoe", Name: "Jane Doe"}).DisplayName())
	assert.Equal(t, "jdoe", (&User{Login: "jdoe"}).DisplayName())
	var nilUser *User
	assert.Equal(t, "", nilUser.DisplayName())
}
