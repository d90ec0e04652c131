package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	service  services.AdminService
	exporter services.ExportService
}

func NewAdminHandler(service services.AdminService, exporter services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		exporter:    exporter,
	}
}

// ListAdmins lists every admin
// @Summary List admins
// @Description Get all admins, served through the list cache
// @Tags admin
// @Produce json
// @Success 200 {array} models.AdminDto
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	h.LogRequest(c, "Listing admins")

	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, admins)
}

// GetAdmin retrieves an admin by ID
// @Summary Get admin by ID
// @Tags admin
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} models.AdminDto
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /admin/{id} [get]
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	admin, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

// CreateAdmin creates an admin profile for an existing user
// @Summary Create admin
// @Tags admin
// @Accept json
// @Produce json
// @Param admin body models.AdminCreateDto true "Admin"
// @Success 201 {object} models.AdminDto
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req models.AdminCreateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating admin", "user_id", req.UserID)

	admin, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	created(c, admin.ID, admin)
}

// UpdateAdmin updates an admin and optionally its user
// @Summary Update admin
// @Tags admin
// @Accept json
// @Param id path int true "Admin ID"
// @Param admin body models.AdminUpdateDto true "Admin"
// @Success 204
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /admin/{id} [put]
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.AdminUpdateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating admin", "admin_id", id)

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAdmin deletes an admin and its user
// @Summary Delete admin
// @Tags admin
// @Param id path int true "Admin ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /admin/{id} [delete]
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting admin", "admin_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportAdmins downloads the admin list as a spreadsheet
// @Summary Export admins
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /admin/export [get]
func (h *AdminHandler) ExportAdmins(c *gin.Context) {
	h.export(c, h.exporter, services.EntityAdmin)
}
