package models

// Department owns downtime reasons and groups users
type Department struct {
	BaseModel
	Name   string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Code   string `json:"code" gorm:"size:20" validate:"max=20"`
	Active bool   `json:"active" gorm:"not null"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
