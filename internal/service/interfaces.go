package service

import (
	"context"
	"io"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuditLogger posts notes on a record's timeline
type AuditLogger interface {
	PostNote(ctx context.Context, resModel string, resID uuid.UUID, author *models.User, body string) error
}

// TaskScheduler schedules to-do activities for users against a record
type TaskScheduler interface {
	ScheduleActivity(ctx context.Context, resModel string, resID uuid.UUID, userID uuid.UUID, summary, note string) error
}

// ReasonCache stores rendered reason catalog listings
type ReasonCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

// ObjectStorage stores attachment content
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error)
	List(ctx context.Context, page, pageSize int) (*DepartmentListResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	List(ctx context.Context, departmentID *uuid.UUID, page, pageSize int) (*UserListResponse, error)
}

// ProductionOrderServiceInterface defines the interface for production order service
type ProductionOrderServiceInterface interface {
	Create(ctx context.Context, req *CreateProductionOrderRequest) (*ProductionOrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductionOrderResponse, error)
	Search(ctx context.Context, query string, page, pageSize int) (*ProductionOrderListResponse, error)
}

// DowntimeReasonServiceInterface defines the interface for the reason catalog service
type DowntimeReasonServiceInterface interface {
	Create(ctx context.Context, req *CreateDowntimeReasonRequest) (*DowntimeReasonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DowntimeReasonResponse, error)
	List(ctx context.Context, req *ListDowntimeReasonsRequest) (*DowntimeReasonListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDowntimeReasonRequest) (*DowntimeReasonResponse, error)
}

// DowntimeLogServiceInterface defines the interface for the downtime log workflow
type DowntimeLogServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *CreateDowntimeLogRequest) (*DowntimeLogResponse, error)
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*DowntimeLogResponse, error)
	List(ctx context.Context, viewerID uuid.UUID, req *ListDowntimeLogsRequest) (*DowntimeLogListResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *UpdateDowntimeLogRequest) (*DowntimeLogResponse, error)
	Submit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error)
	Edit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error)
	UpdateSubmit(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error)
	Approve(ctx context.Context, actorID, id uuid.UUID) (*DowntimeLogResponse, error)
	GetMessages(ctx context.Context, id uuid.UUID) ([]MessageResponse, error)
	GetActivities(ctx context.Context, id uuid.UUID) ([]ActivityResponse, error)
}

// ActivityServiceInterface defines the interface for the to-do activity service
type ActivityServiceInterface interface {
	ListMine(ctx context.Context, userID uuid.UUID, state models.ActivityState, page, pageSize int) (*ActivityListResponse, error)
	MarkDone(ctx context.Context, actorID, id uuid.UUID) (*ActivityResponse, error)
}

// DirectoryServiceInterface defines the interface for LDAP directory lookups and imports
type DirectoryServiceInterface interface {
	SearchUsersByCN(ctx context.Context, cn string) ([]DirectoryUser, error)
	ImportUser(ctx context.Context, req *ImportDirectoryUserRequest) (*UserResponse, error)
}

// ExportServiceInterface defines the interface for spreadsheet exports
type ExportServiceInterface interface {
	ExportDowntimeLogs(ctx context.Context, viewerID uuid.UUID, req *ListDowntimeLogsRequest) ([]byte, error)
}

// AttachmentServiceInterface defines the interface for downtime log attachments
type AttachmentServiceInterface interface {
	Upload(ctx context.Context, actorID, logID uuid.UUID, file *AttachmentUpload) (*AttachmentResponse, error)
	List(ctx context.Context, logID uuid.UUID) ([]AttachmentResponse, error)
}
