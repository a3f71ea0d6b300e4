package testutils

import (
	"fmt"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
)

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Maintenance " + id.String()[:8],
		Code:      "MNT",
		Active:    true,
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	dept := f.Create()
	dept.Name = name
	return dept
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	login := "user" + id.String()[:8]
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Login:     login,
		Name:      "Test User " + id.String()[:4],
		Email:     login + "@plant.test",
		Active:    true,
	}
}

// WithDepartment creates a user that belongs to departmentID
func (f *UserFactory) WithDepartment(departmentID uuid.UUID) *models.User {
	user := f.Create()
	user.DepartmentID = &departmentID
	return user
}

// WithName creates a user with a fixed display name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// ProductionOrderFactory provides methods to create test ProductionOrder data
type ProductionOrderFactory struct {
	seq int
}

// NewProductionOrderFactory creates a new ProductionOrderFactory
func NewProductionOrderFactory() *ProductionOrderFactory {
	return &ProductionOrderFactory{}
}

// Create creates a test ProductionOrder with a unique reference
func (f *ProductionOrderFactory) Create() *models.ProductionOrder {
	f.seq++
	return &models.ProductionOrder{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Reference: fmt.Sprintf("MO/%05d", f.seq),
		Product:   "Widget",
		State:     "confirmed",
	}
}

// DowntimeReasonFactory provides methods to create test DowntimeReason data
type DowntimeReasonFactory struct{}

// NewDowntimeReasonFactory creates a new DowntimeReasonFactory
func NewDowntimeReasonFactory() *DowntimeReasonFactory {
	return &DowntimeReasonFactory{}
}

// Create creates an active activity-notifying reason owned by departmentID
func (f *DowntimeReasonFactory) Create(departmentID uuid.UUID, responsible ...models.User) *models.DowntimeReason {
	return &models.DowntimeReason{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Name:             "Conveyor jam",
		Category:         models.DowntimeCategoryMechanical,
		DepartmentID:     departmentID,
		NotificationType: models.NotificationTypeActivity,
		Active:           true,
		ResponsibleUsers: responsible,
	}
}

// DowntimeLogFactory provides methods to create test DowntimeLog data
type DowntimeLogFactory struct {
	seq int
}

// NewDowntimeLogFactory creates a new DowntimeLogFactory
func NewDowntimeLogFactory() *DowntimeLogFactory {
	return &DowntimeLogFactory{}
}

// Create creates a draft one hour downtime log for reasonID reported by reporterID
func (f *DowntimeLogFactory) Create(reasonID, reporterID uuid.UUID) *models.DowntimeLog {
	f.seq++
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Hour)
	log := models.NewDowntimeLog(reporterID)
	log.ID = uuid.New()
	log.Reference = fmt.Sprintf("TEST/%05d", f.seq)
	log.ReasonID = reasonID
	log.StartTime = start
	log.EndTime = start.Add(time.Hour)
	log.Description = "Line stopped"
	log.ComputeDuration()
	return log
}

// FactorySet provides access to all factories
type FactorySet struct {
	Department      *DepartmentFactory
	User            *UserFactory
	ProductionOrder *ProductionOrderFactory
	DowntimeReason  *DowntimeReasonFactory
	DowntimeLog     *DowntimeLogFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Department:      NewDepartmentFactory(),
		User:            NewUserFactory(),
		ProductionOrder: NewProductionOrderFactory(),
		DowntimeReason:  NewDowntimeReasonFactory(),
		DowntimeLog:     NewDowntimeLogFactory(),
	}
}
