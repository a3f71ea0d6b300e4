package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Top-Technologies/downtime/internal/database/models"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

var _ DepartmentServiceInterface = (*DepartmentService)(nil)

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Code string `json:"code,omitempty" validate:"max=20"`
}

// DepartmentResponse represents a department
type DepartmentResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Code   string    `json:"code"`
	Active bool      `json:"active"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new department with a unique name
func (s *DepartmentService) Create(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, apperrors.ErrDepartmentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check department: %w", err)
	}

	dept := &models.Department{
		Name:   req.Name,
		Code:   req.Code,
		Active: true,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return toDepartmentResponse(dept), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return toDepartmentResponse(dept), nil
}

// List retrieves departments ordered by name
func (s *DepartmentService) List(ctx context.Context, page, pageSize int) (*DepartmentListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	depts, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	items := make([]DepartmentResponse, len(depts))
	for i := range depts {
		items[i] = *toDepartmentResponse(&depts[i])
	}
	return &DepartmentListResponse{
		Departments: items,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func toDepartmentResponse(d *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:     d.ID,
		Name:   d.Name,
		Code:   d.Code,
		Active: d.Active,
	}
}
