package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
)

type TeacherHandler struct {
	BaseHandler
	service  services.TeacherService
	exporter services.ExportService
}

func NewTeacherHandler(service services.TeacherService, exporter services.ExportService, logger utils.Logger) *TeacherHandler {
	return &TeacherHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		exporter:    exporter,
	}
}

// ListTeachers lists every teacher
// @Summary List teachers
// @Description Get all teachers, served through the list cache
// @Tags teacher
// @Produce json
// @Success 200 {array} models.TeacherDto
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teacher [get]
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	h.LogRequest(c, "Listing teachers")

	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teachers)
}

// GetTeacher retrieves a teacher by ID
// @Summary Get teacher by ID
// @Tags teacher
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} models.TeacherDto
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /teacher/{id} [get]
func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	teacher, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

// CreateTeacher creates a teacher profile for an existing user
// @Summary Create teacher
// @Tags teacher
// @Accept json
// @Produce json
// @Param teacher body models.TeacherCreateDto true "Teacher"
// @Success 201 {object} models.TeacherDto
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teacher [post]
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req models.TeacherCreateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating teacher", "user_id", req.UserID)

	teacher, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	created(c, teacher.ID, teacher)
}

// UpdateTeacher updates a teacher and optionally its user
// @Summary Update teacher
// @Tags teacher
// @Accept json
// @Param id path int true "Teacher ID"
// @Param teacher body models.TeacherUpdateDto true "Teacher"
// @Success 204
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /teacher/{id} [put]
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.TeacherUpdateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating teacher", "teacher_id", id)

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTeacher deletes a teacher and its user
// @Summary Delete teacher
// @Tags teacher
// @Param id path int true "Teacher ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /teacher/{id} [delete]
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting teacher", "teacher_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportTeachers downloads the teacher list as a spreadsheet
// @Summary Export teachers
// @Tags teacher
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /teacher/export [get]
func (h *TeacherHandler) ExportTeachers(c *gin.Context) {
	h.export(c, h.exporter, services.EntityTeacher)
}
