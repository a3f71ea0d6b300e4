package repository

import (
	"context"
	"strings"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionOrderRepository handles database operations for production orders
type ProductionOrderRepository struct {
	db *gorm.DB
}

var _ ProductionOrderRepositoryInterface = (*ProductionOrderRepository)(nil)

// NewProductionOrderRepository creates a new production order repository
func NewProductionOrderRepository(db *gorm.DB) *ProductionOrderRepository {
	return &ProductionOrderRepository{db: db}
}

// Create creates a new production order
func (r *ProductionOrderRepository) Create(ctx context.Context, order *models.ProductionOrder) error {
	return conn(ctx, r.db).Create(order).Error
}

// GetByID retrieves a production order by ID
func (r *ProductionOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductionOrder, error) {
	var order models.ProductionOrder
	err := conn(ctx, r.db).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByReference retrieves a production order by reference
func (r *ProductionOrderRepository) GetByReference(ctx context.Context, reference string) (*models.ProductionOrder, error) {
	var order models.ProductionOrder
	err := conn(ctx, r.db).First(&order, "reference = ?", reference).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Search lists production orders whose reference or product matches query
func (r *ProductionOrderRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.ProductionOrder, int64, error) {
	var orders []models.ProductionOrder
	var total int64

	q := conn(ctx, r.db).Model(&models.ProductionOrder{})
	if query = strings.TrimSpace(query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(reference) LIKE ? OR LOWER(product) LIKE ?", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("reference DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

// Update updates a production order
func (r *ProductionOrderRepository) Update(ctx context.Context, order *models.ProductionOrder) error {
	return conn(ctx, r.db).Save(order).Error
}
