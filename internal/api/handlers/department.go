package handlers

import (
	"net/http"

	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for department operations
type DepartmentHandler struct {
	departmentService service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentService service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// CreateDepartment handles POST /departments
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Department already exists"
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dept, err := h.departmentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dept)
}

// GetDepartment handles GET /departments/:id
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := pathUUID(c, "id", "department")
	if !ok {
		return
	}

	dept, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dept)
}

// ListDepartments handles GET /departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DepartmentListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination"
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	page, pageSize, err := pagination(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.departmentService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
