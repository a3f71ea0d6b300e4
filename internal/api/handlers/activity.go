package handlers

import (
	"net/http"

	"github.com/Top-Technologies/downtime/internal/database/models"
	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for to-do activities
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListMyActivities handles GET /activities/mine
// @Summary List activities assigned to the authenticated user
// @Tags activities
// @Produce json
// @Param state query string false "Activity state" Enums(planned, done)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ActivityListResponse
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Security BearerAuth
// @Router /activities/mine [get]
func (h *ActivityHandler) ListMyActivities(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	page, pageSize, err := pagination(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.activityService.ListMine(c.Request.Context(), userID, models.ActivityState(c.Query("state")), page, pageSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// MarkActivityDone handles POST /activities/:id/done
// @Summary Mark an activity as done
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityResponse
// @Failure 403 {object} map[string]interface{} "Activity assigned to someone else"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Security BearerAuth
// @Router /activities/{id}/done [post]
func (h *ActivityHandler) MarkActivityDone(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "activity")
	if !ok {
		return
	}

	activity, err := h.activityService.MarkDone(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}
