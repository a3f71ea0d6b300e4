package repository

import (
	"context"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactionManagerInterface runs a unit of work in one database transaction
type TransactionManagerInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, dept *models.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Department, int64, error)
	Update(ctx context.Context, dept *models.Department) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	GetByDepartmentID(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
}

// ProductionOrderRepositoryInterface defines the interface for production order repository operations
type ProductionOrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.ProductionOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductionOrder, error)
	GetByReference(ctx context.Context, reference string) (*models.ProductionOrder, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.ProductionOrder, int64, error)
	Update(ctx context.Context, order *models.ProductionOrder) error
}

// DowntimeReasonFilter narrows a reason catalog listing
type DowntimeReasonFilter struct {
	Active       *bool
	DepartmentID *uuid.UUID
	Category     models.DowntimeCategory
	Limit        int
	Offset       int
}

// DowntimeReasonRepositoryInterface defines the interface for downtime reason repository operations
type DowntimeReasonRepositoryInterface interface {
	Create(ctx context.Context, reason *models.DowntimeReason) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DowntimeReason, error)
	List(ctx context.Context, filter DowntimeReasonFilter) ([]models.DowntimeReason, int64, error)
	Update(ctx context.Context, reason *models.DowntimeReason) error
}

// DowntimeLogFilter narrows a downtime log listing
type DowntimeLogFilter struct {
	State             models.DowntimeState
	ReasonID          *uuid.UUID
	ReportedByID      *uuid.UUID
	ResponsibleUserID *uuid.UUID
	ProductionOrderID *uuid.UUID
	From              *time.Time
	To                *time.Time
	Limit             int
	Offset            int
}

// DowntimeLogRepositoryInterface defines the interface for downtime log repository operations
type DowntimeLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.DowntimeLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DowntimeLog, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.DowntimeLog, error)
	GetByReference(ctx context.Context, reference string) (*models.DowntimeLog, error)
	List(ctx context.Context, filter DowntimeLogFilter) ([]models.DowntimeLog, int64, error)
	Update(ctx context.Context, log *models.DowntimeLog) error
}

// MessageRepositoryInterface defines the interface for audit message repository operations
type MessageRepositoryInterface interface {
	Create(ctx context.Context, msg *models.Message) error
	ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Message, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID, state models.ActivityState, limit, offset int) ([]models.Activity, int64, error)
	Update(ctx context.Context, activity *models.Activity) error
}

// AttachmentRepositoryInterface defines the interface for attachment repository operations
type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error)
	ListByRecord(ctx context.Context, resModel string, resID uuid.UUID) ([]models.Attachment, error)
}

// SequenceRepositoryInterface defines the interface for reference sequence operations
type SequenceRepositoryInterface interface {
	NextByCode(ctx context.Context, code string) (string, error)
	GetByCode(ctx context.Context, code string) (*models.Sequence, error)
}
