package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DowntimeLogHandler handles HTTP requests for downtime logs and their workflow
type DowntimeLogHandler struct {
	logService        service.DowntimeLogServiceInterface
	exportService     service.ExportServiceInterface
	attachmentService service.AttachmentServiceInterface
}

// NewDowntimeLogHandler creates a new downtime log handler
func NewDowntimeLogHandler(
	logService service.DowntimeLogServiceInterface,
	exportService service.ExportServiceInterface,
	attachmentService service.AttachmentServiceInterface,
) *DowntimeLogHandler {
	return &DowntimeLogHandler{
		logService:        logService,
		exportService:     exportService,
		attachmentService: attachmentService,
	}
}

// CreateDowntimeLog handles POST /downtime-logs
// @Summary Report a downtime
// @Description Creates a draft log reported by the authenticated user. Responsible users are copied from the reason.
// @Tags downtime-logs
// @Accept json
// @Produce json
// @Param log body service.CreateDowntimeLogRequest true "Downtime data"
// @Success 201 {object} service.DowntimeLogResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Reference already used"
// @Security BearerAuth
// @Router /downtime-logs [post]
func (h *DowntimeLogHandler) CreateDowntimeLog(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	var req service.CreateDowntimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.logService.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetDowntimeLog handles GET /downtime-logs/:id
// @Summary Get downtime log by ID
// @Description is_editable and was_submitted are computed for the authenticated user
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 400 {object} map[string]interface{} "Invalid downtime log ID"
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id} [get]
func (h *DowntimeLogHandler) GetDowntimeLog(c *gin.Context) {
	viewerID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	log, err := h.logService.GetByID(c.Request.Context(), viewerID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// ListDowntimeLogs handles GET /downtime-logs
// @Summary List downtime logs
// @Description Ordered by reference descending
// @Tags downtime-logs
// @Produce json
// @Param state query string false "Workflow state" Enums(draft, submitted, needs_update, approved)
// @Param reason_id query string false "Filter by reason (UUID)"
// @Param production_order_id query string false "Filter by production order (UUID)"
// @Param mine query bool false "Only logs reported by the authenticated user"
// @Param to_review query bool false "Only submitted logs the authenticated user is responsible for"
// @Param from query string false "Start time lower bound (RFC 3339)"
// @Param to query string false "Start time upper bound (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DowntimeLogListResponse
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Security BearerAuth
// @Router /downtime-logs [get]
func (h *DowntimeLogHandler) ListDowntimeLogs(c *gin.Context) {
	viewerID, ok := actingUser(c)
	if !ok {
		return
	}
	req, err := listDowntimeLogsRequest(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.logService.List(c.Request.Context(), viewerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ExportDowntimeLogs handles GET /downtime-logs/export
// @Summary Export downtime logs as a spreadsheet
// @Description Accepts the same filters as the list endpoint; pagination is ignored
// @Tags downtime-logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param state query string false "Workflow state" Enums(draft, submitted, needs_update, approved)
// @Param reason_id query string false "Filter by reason (UUID)"
// @Param production_order_id query string false "Filter by production order (UUID)"
// @Param mine query bool false "Only logs reported by the authenticated user"
// @Param to_review query bool false "Only submitted logs the authenticated user is responsible for"
// @Param from query string false "Start time lower bound (RFC 3339)"
// @Param to query string false "Start time upper bound (RFC 3339)"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Security BearerAuth
// @Router /downtime-logs/export [get]
func (h *DowntimeLogHandler) ExportDowntimeLogs(c *gin.Context) {
	viewerID, ok := actingUser(c)
	if !ok {
		return
	}
	req, err := listDowntimeLogsRequest(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.exportService.ExportDowntimeLogs(c.Request.Context(), viewerID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("downtime-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// UpdateDowntimeLog handles PUT /downtime-logs/:id
// @Summary Change log fields
// @Description Absent fields are left untouched. Changes to a submitted, non-editable log flag it as needs_update.
// @Tags downtime-logs
// @Accept json
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Param log body service.UpdateDowntimeLogRequest true "Fields to change"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id} [put]
func (h *DowntimeLogHandler) UpdateDowntimeLog(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	var req service.UpdateDowntimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.logService.Update(c.Request.Context(), actorID, id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// SubmitDowntimeLog handles POST /downtime-logs/:id/submit
// @Summary Submit a log for approval
// @Description Moves the log to submitted and notifies the responsible users
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/submit [post]
func (h *DowntimeLogHandler) SubmitDowntimeLog(c *gin.Context) {
	h.transition(c, h.logService.Submit)
}

// EditDowntimeLog handles POST /downtime-logs/:id/edit
// @Summary Unlock a submitted log for editing
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 403 {object} map[string]interface{} "Only the reporter can edit"
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/edit [post]
func (h *DowntimeLogHandler) EditDowntimeLog(c *gin.Context) {
	h.transition(c, h.logService.Edit)
}

// UpdateSubmitDowntimeLog handles POST /downtime-logs/:id/update-submit
// @Summary Resubmit an edited log
// @Description Locks the log again and re-notifies the responsible users
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/update-submit [post]
func (h *DowntimeLogHandler) UpdateSubmitDowntimeLog(c *gin.Context) {
	h.transition(c, h.logService.UpdateSubmit)
}

// ApproveDowntimeLog handles POST /downtime-logs/:id/approve
// @Summary Approve a log
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {object} service.DowntimeLogResponse
// @Failure 403 {object} map[string]interface{} "Only responsible users can approve"
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/approve [post]
func (h *DowntimeLogHandler) ApproveDowntimeLog(c *gin.Context) {
	h.transition(c, h.logService.Approve)
}

func (h *DowntimeLogHandler) transition(c *gin.Context, action func(ctx context.Context, actorID, id uuid.UUID) (*service.DowntimeLogResponse, error)) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	log, err := action(c.Request.Context(), actorID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// GetDowntimeLogMessages handles GET /downtime-logs/:id/messages
// @Summary List the timeline notes of a log
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {array} service.MessageResponse
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/messages [get]
func (h *DowntimeLogHandler) GetDowntimeLogMessages(c *gin.Context) {
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	messages, err := h.logService.GetMessages(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetDowntimeLogActivities handles GET /downtime-logs/:id/activities
// @Summary List the to-do activities scheduled on a log
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {array} service.ActivityResponse
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/activities [get]
func (h *DowntimeLogHandler) GetDowntimeLogActivities(c *gin.Context) {
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	activities, err := h.logService.GetActivities(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// UploadAttachment handles POST /downtime-logs/:id/attachments
// @Summary Attach a file to a log
// @Tags downtime-logs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Param file formData file true "File to attach"
// @Success 201 {object} service.AttachmentResponse
// @Failure 400 {object} map[string]interface{} "Missing or oversized file"
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Failure 503 {object} map[string]interface{} "Attachment storage not configured"
// @Security BearerAuth
// @Router /downtime-logs/{id}/attachments [post]
func (h *DowntimeLogHandler) UploadAttachment(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), actorID, id, &service.AttachmentUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attachment)
}

// ListAttachments handles GET /downtime-logs/:id/attachments
// @Summary List the files attached to a log
// @Tags downtime-logs
// @Produce json
// @Param id path string true "Downtime log ID (UUID)"
// @Success 200 {array} service.AttachmentResponse
// @Failure 404 {object} map[string]interface{} "Downtime log not found"
// @Security BearerAuth
// @Router /downtime-logs/{id}/attachments [get]
func (h *DowntimeLogHandler) ListAttachments(c *gin.Context) {
	id, ok := pathUUID(c, "id", "downtime log")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.List(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachments)
}

func listDowntimeLogsRequest(c *gin.Context) (*service.ListDowntimeLogsRequest, error) {
	req := &service.ListDowntimeLogsRequest{
		State: models.DowntimeState(c.Query("state")),
	}

	var err error
	if req.ReasonID, err = queryUUID(c, "reason_id"); err != nil {
		return nil, err
	}
	if req.ProductionOrderID, err = queryUUID(c, "production_order_id"); err != nil {
		return nil, err
	}
	mine, err := queryBool(c, "mine")
	if err != nil {
		return nil, err
	}
	req.ReportedByMe = mine != nil && *mine
	toReview, err := queryBool(c, "to_review")
	if err != nil {
		return nil, err
	}
	req.ToReview = toReview != nil && *toReview
	if req.From, err = queryTime(c, "from"); err != nil {
		return nil, err
	}
	if req.To, err = queryTime(c, "to"); err != nil {
		return nil, err
	}
	if req.Page, req.PageSize, err = pagination(c); err != nil {
		return nil, err
	}
	return req, nil
}
