package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

var _ DepartmentRepositoryInterface = (*DepartmentRepository)(nil)

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	return conn(ctx, r.db).Create(dept).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var dept models.Department
	err := conn(ctx, r.db).First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetByName retrieves a department by name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	var dept models.Department
	err := conn(ctx, r.db).First(&dept, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetAll retrieves all departments with pagination
func (r *DepartmentRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Department, int64, error) {
	var depts []models.Department
	var total int64

	db := conn(ctx, r.db)
	if err := db.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&depts).Error
	return depts, total, err
}

// Update updates a department
func (r *DepartmentRepository) Update(ctx context.Context, dept *models.Department) error {
	return conn(ctx, r.db).Save(dept).Error
}
