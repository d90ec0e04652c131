package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	service  services.UserService
	exporter services.ExportService
}

func NewUserHandler(service services.UserService, exporter services.ExportService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		exporter:    exporter,
	}
}

// ListUsers lists every user
// @Summary List users
// @Description Get all users, served through the list cache
// @Tags user
// @Produce json
// @Success 200 {array} models.UserDto
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDto
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser registers a user, storing a hash of the password
// @Summary Create user
// @Tags user
// @Accept json
// @Produce json
// @Param user body models.UserCreateDto true "User"
// @Success 201 {object} models.UserDto
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating user", "username", req.Username)

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	created(c, user.ID, user)
}

// UpdateUser applies a partial update to a user
// @Summary Update user
// @Tags user
// @Accept json
// @Param id path int true "User ID"
// @Param user body models.UserUpdateDto true "User"
// @Success 204
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.UserUpdateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating user", "user_id", id)

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteUser deletes a user and its profile, if any
// @Summary Delete user
// @Tags user
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting user", "user_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportUsers downloads the user list as a spreadsheet
// @Summary Export users
// @Tags user
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /user/export [get]
func (h *UserHandler) ExportUsers(c *gin.Context) {
	h.export(c, h.exporter, services.EntityUser)
}
