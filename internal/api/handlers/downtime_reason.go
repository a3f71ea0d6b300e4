package handlers

import (
	"net/http"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
)

// DowntimeReasonHandler handles HTTP requests for the reason catalog
type DowntimeReasonHandler struct {
	reasonService service.DowntimeReasonServiceInterface
}

// NewDowntimeReasonHandler creates a new downtime reason handler
func NewDowntimeReasonHandler(reasonService service.DowntimeReasonServiceInterface) *DowntimeReasonHandler {
	return &DowntimeReasonHandler{reasonService: reasonService}
}

// CreateDowntimeReason handles POST /downtime-reasons
// @Summary Add a reason to the catalog
// @Tags downtime-reasons
// @Accept json
// @Produce json
// @Param reason body service.CreateDowntimeReasonRequest true "Reason data"
// @Success 201 {object} service.DowntimeReasonResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Department or user not found"
// @Security BearerAuth
// @Router /downtime-reasons [post]
func (h *DowntimeReasonHandler) CreateDowntimeReason(c *gin.Context) {
	var req service.CreateDowntimeReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reason, err := h.reasonService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reason)
}

// GetDowntimeReason handles GET /downtime-reasons/:id
// @Summary Get reason by ID
// @Tags downtime-reasons
// @Produce json
// @Param id path string true "Reason ID (UUID)"
// @Success 200 {object} service.DowntimeReasonResponse
// @Failure 400 {object} map[string]interface{} "Invalid reason ID"
// @Failure 404 {object} map[string]interface{} "Reason not found"
// @Security BearerAuth
// @Router /downtime-reasons/{id} [get]
func (h *DowntimeReasonHandler) GetDowntimeReason(c *gin.Context) {
	id, ok := pathUUID(c, "id", "downtime reason")
	if !ok {
		return
	}

	reason, err := h.reasonService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reason)
}

// ListDowntimeReasons handles GET /downtime-reasons
// @Summary List the reason catalog
// @Description Active reasons by default; pass active=false for archived ones or all=true for both
// @Tags downtime-reasons
// @Produce json
// @Param active query bool false "Filter by active flag" default(true)
// @Param all query bool false "Include archived reasons"
// @Param department_id query string false "Filter by department (UUID)"
// @Param category query string false "Filter by category" Enums(mechanical, electrical, material, manpower, planned, software, other)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DowntimeReasonListResponse
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Security BearerAuth
// @Router /downtime-reasons [get]
func (h *DowntimeReasonHandler) ListDowntimeReasons(c *gin.Context) {
	req, err := listDowntimeReasonsRequest(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.reasonService.List(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateDowntimeReason handles PUT /downtime-reasons/:id
// @Summary Update a reason
// @Description Changing department_id requires responsible_user_ids in the same request
// @Tags downtime-reasons
// @Accept json
// @Produce json
// @Param id path string true "Reason ID (UUID)"
// @Param reason body service.UpdateDowntimeReasonRequest true "Fields to change"
// @Success 200 {object} service.DowntimeReasonResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Reason, department or user not found"
// @Security BearerAuth
// @Router /downtime-reasons/{id} [put]
func (h *DowntimeReasonHandler) UpdateDowntimeReason(c *gin.Context) {
	id, ok := pathUUID(c, "id", "downtime reason")
	if !ok {
		return
	}

	var req service.UpdateDowntimeReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reason, err := h.reasonService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reason)
}

func listDowntimeReasonsRequest(c *gin.Context) (*service.ListDowntimeReasonsRequest, error) {
	req := &service.ListDowntimeReasonsRequest{
		Category: models.DowntimeCategory(c.Query("category")),
	}

	var err error
	if req.Active, err = queryBool(c, "active"); err != nil {
		return nil, err
	}
	all, err := queryBool(c, "all")
	if err != nil {
		return nil, err
	}
	req.All = all != nil && *all
	if req.DepartmentID, err = queryUUID(c, "department_id"); err != nil {
		return nil, err
	}
	if req.Page, req.PageSize, err = pagination(c); err != nil {
		return nil, err
	}
	return req, nil
}
