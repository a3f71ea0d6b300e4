package handlers

import (
	"net/http"

	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductionOrderHandler handles HTTP requests for production orders
type ProductionOrderHandler struct {
	orderService service.ProductionOrderServiceInterface
}

// NewProductionOrderHandler creates a new production order handler
func NewProductionOrderHandler(orderService service.ProductionOrderServiceInterface) *ProductionOrderHandler {
	return &ProductionOrderHandler{orderService: orderService}
}

// CreateProductionOrder handles POST /production-orders
// @Summary Register a production order
// @Tags production-orders
// @Accept json
// @Produce json
// @Param order body service.CreateProductionOrderRequest true "Production order data"
// @Success 201 {object} service.ProductionOrderResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Reference already used"
// @Security BearerAuth
// @Router /production-orders [post]
func (h *ProductionOrderHandler) CreateProductionOrder(c *gin.Context) {
	var req service.CreateProductionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetProductionOrder handles GET /production-orders/:id
// @Summary Get production order by ID
// @Tags production-orders
// @Produce json
// @Param id path string true "Production order ID (UUID)"
// @Success 200 {object} service.ProductionOrderResponse
// @Failure 400 {object} map[string]interface{} "Invalid production order ID"
// @Failure 404 {object} map[string]interface{} "Production order not found"
// @Security BearerAuth
// @Router /production-orders/{id} [get]
func (h *ProductionOrderHandler) GetProductionOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id", "production order")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// SearchProductionOrders handles GET /production-orders
// @Summary Search production orders by reference
// @Tags production-orders
// @Produce json
// @Param q query string false "Reference fragment"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProductionOrderListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination"
// @Security BearerAuth
// @Router /production-orders [get]
func (h *ProductionOrderHandler) SearchProductionOrders(c *gin.Context) {
	page, pageSize, err := pagination(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.orderService.Search(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
