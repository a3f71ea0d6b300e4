package handlers

import (
	"net/http"

	"github.com/Top-Technologies/downtime/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles LDAP directory lookups and imports
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// SearchDirectoryUsers handles GET /directory/users
// @Summary Search the directory by CN prefix
// @Tags directory
// @Produce json
// @Param cn query string true "CN prefix"
// @Success 200 {object} map[string]interface{} "Matching directory entries"
// @Failure 400 {object} map[string]interface{} "Missing cn"
// @Failure 503 {object} map[string]interface{} "Directory not configured"
// @Security BearerAuth
// @Router /directory/users [get]
func (h *DirectoryHandler) SearchDirectoryUsers(c *gin.Context) {
	cn := c.Query("cn")
	if cn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cn query parameter is required"})
		return
	}

	users, err := h.directoryService.SearchUsersByCN(c.Request.Context(), cn)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}

// ImportDirectoryUser handles POST /directory/import
// @Summary Import a directory entry as a user
// @Description Department comes from the request, otherwise from the directory entry
// @Tags directory
// @Accept json
// @Produce json
// @Param user body service.ImportDirectoryUserRequest true "Login to import"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Directory entry or department not found"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Failure 503 {object} map[string]interface{} "Directory not configured"
// @Security BearerAuth
// @Router /directory/import [post]
func (h *DirectoryHandler) ImportDirectoryUser(c *gin.Context) {
	var req service.ImportDirectoryUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.directoryService.ImportUser(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
