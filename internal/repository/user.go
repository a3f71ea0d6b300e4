package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).Preload("Department").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByLogin retrieves a user by login
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).First(&user, "login = ?", login).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the users with the given IDs; unknown IDs are skipped
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := conn(ctx, r.db).Where("id IN ?", ids).Order("name ASC").Find(&users).Error
	return users, err
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := conn(ctx, r.db)
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// GetByDepartmentID retrieves the users of a department
func (r *UserRepository) GetByDepartmentID(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := conn(ctx, r.db).Model(&models.User{}).Where("department_id = ?", departmentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(user).Error
}
