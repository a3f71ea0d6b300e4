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

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		deptRepo:  deptRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Login        string     `json:"login" validate:"required,min=2,max=64"`
	Name         string     `json:"name" validate:"required,max=200"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email,max=255"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UserResponse represents a user
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Login          string     `json:"login"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DepartmentID   *uuid.UUID `json:"department_id,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
	Active         bool       `json:"active"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new user with a unique login
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Login = strings.TrimSpace(req.Login)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByLogin(ctx, req.Login)
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	user := &models.User{
		Login:  req.Login,
		Name:   req.Name,
		Email:  req.Email,
		Active: true,
	}
	if req.DepartmentID != nil {
		dept, err := s.deptRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		user.DepartmentID = &dept.ID
		user.Department = dept
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// List retrieves users, optionally only those of one department
func (s *UserService) List(ctx context.Context, departmentID *uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	var (
		users []models.User
		total int64
		err   error
	)
	if departmentID != nil {
		users, total, err = s.repo.GetByDepartmentID(ctx, *departmentID, limit, offset)
	} else {
		users, total, err = s.repo.GetAll(ctx, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = *toUserResponse(&users[i])
	}
	return &UserListResponse{
		Users:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Login:        u.Login,
		Name:         u.Name,
		Email:        u.Email,
		DepartmentID: u.DepartmentID,
		Active:       u.Active,
	}
	if u.Department != nil {
		resp.DepartmentName = u.Department.Name
	}
	return resp
}
