package models

import (
	"fmt"
)

// SequenceCodeDowntime is the sequence used for downtime log references
const SequenceCodeDowntime = "mrp.downtime"

// Sequence hands out formatted, monotonically increasing references
type Sequence struct {
	BaseModel
	Code       string `json:"code" gorm:"uniqueIndex;not null;size:64" validate:"required"`
	Prefix     string `json:"prefix" gorm:"size:32"`
	Padding    int    `json:"padding" gorm:"not null;default:5"`
	NumberNext int64  `json:"number_next" gorm:"not null;default:1"`
	Increment  int64  `json:"increment" gorm:"not null;default:1"`
}

// TableName returns the table name for Sequence
func (Sequence) TableName() string {
	return "sequences"
}

// Format renders n with the sequence prefix and zero padding
func (s *Sequence) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Padding, n)
}

// Advance returns the next formatted value and moves the counter forward
func (s *Sequence) Advance() string {
	step := s.Increment
	if step <= 0 {
		step = 1
	}
	value := s.Format(s.NumberNext)
	s.NumberNext += step
	return value
}
