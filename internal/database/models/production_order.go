package models

// ProductionOrder is the manufacturing order a downtime can be linked to
type ProductionOrder struct {
	BaseModel
	Reference string `json:"reference" gorm:"uniqueIndex;not null;size:64" validate:"required,min=1,max=64"`
	Product   string `json:"product" gorm:"size:200" validate:"max=200"`
	State     string `json:"state" gorm:"size:30;not null;default:'confirmed'"`
}

// TableName returns the table name for ProductionOrder
func (ProductionOrder) TableName() string {
	return "production_orders"
}
