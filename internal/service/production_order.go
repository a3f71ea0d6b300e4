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

// ProductionOrderService handles business logic for production orders
type ProductionOrderService struct {
	repo      repository.ProductionOrderRepositoryInterface
	validator *validator.Validate
}

var _ ProductionOrderServiceInterface = (*ProductionOrderService)(nil)

// NewProductionOrderService creates a new production order service
func NewProductionOrderService(repo repository.ProductionOrderRepositoryInterface, validator *validator.Validate) *ProductionOrderService {
	return &ProductionOrderService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductionOrderRequest represents the request to register a production order
type CreateProductionOrderRequest struct {
	Reference string `json:"reference" validate:"required,min=1,max=64"`
	Product   string `json:"product,omitempty" validate:"max=200"`
	State     string `json:"state,omitempty" validate:"omitempty,oneof=draft confirmed progress done cancel"`
}

// ProductionOrderResponse represents a production order
type ProductionOrderResponse struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`
	Product   string    `json:"product"`
	State     string    `json:"state"`
}

// ProductionOrderListResponse represents a paginated list of production orders
type ProductionOrderListResponse struct {
	ProductionOrders []ProductionOrderResponse `json:"production_orders"`
	Total            int64                     `json:"total"`
	Page             int                       `json:"page"`
	PageSize         int                       `json:"page_size"`
}

// Create registers a production order with a unique reference
func (s *ProductionOrderService) Create(ctx context.Context, req *CreateProductionOrderRequest) (*ProductionOrderResponse, error) {
	req.Reference = strings.TrimSpace(req.Reference)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByReference(ctx, req.Reference)
	if err == nil {
		return nil, apperrors.ErrProductionOrderExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check production order: %w", err)
	}

	state := req.State
	if state == "" {
		state = "confirmed"
	}
	order := &models.ProductionOrder{
		Reference: req.Reference,
		Product:   req.Product,
		State:     state,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create production order: %w", err)
	}
	return toProductionOrderResponse(order), nil
}

// GetByID retrieves a production order by ID
func (s *ProductionOrderService) GetByID(ctx context.Context, id uuid.UUID) (*ProductionOrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionOrderNotFound
		}
		return nil, fmt.Errorf("failed to get production order: %w", err)
	}
	return toProductionOrderResponse(order), nil
}

// Search lists production orders matching query on reference or product
func (s *ProductionOrderService) Search(ctx context.Context, query string, page, pageSize int) (*ProductionOrderListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	orders, total, err := s.repo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search production orders: %w", err)
	}

	items := make([]ProductionOrderResponse, len(orders))
	for i := range orders {
		items[i] = *toProductionOrderResponse(&orders[i])
	}
	return &ProductionOrderListResponse{
		ProductionOrders: items,
		Total:            total,
		Page:             page,
		PageSize:         pageSize,
	}, nil
}

func toProductionOrderResponse(o *models.ProductionOrder) *ProductionOrderResponse {
	return &ProductionOrderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		Product:   o.Product,
		State:     o.State,
	}
}
