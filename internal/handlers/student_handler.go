package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
)

type StudentHandler struct {
	BaseHandler
	service  services.StudentService
	exporter services.ExportService
}

func NewStudentHandler(service services.StudentService, exporter services.ExportService, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		exporter:    exporter,
	}
}

// ListStudents lists every student
// @Summary List students
// @Description Get all students, served through the list cache
// @Tags student
// @Produce json
// @Success 200 {array} models.StudentDto
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /student [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	h.LogRequest(c, "Listing students")

	students, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags student
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentDto
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /student/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	student, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// CreateStudent creates a student profile for an existing user
// @Summary Create student
// @Tags student
// @Accept json
// @Produce json
// @Param student body models.StudentCreateDto true "Student"
// @Success 201 {object} models.StudentDto
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /student [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req models.StudentCreateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating student", "user_id", req.UserID)

	student, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	created(c, student.ID, student)
}

// UpdateStudent updates a student and optionally its user
// @Summary Update student
// @Tags student
// @Accept json
// @Param id path int true "Student ID"
// @Param student body models.StudentUpdateDto true "Student"
// @Success 204
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /student/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.StudentUpdateDto
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Updating student", "student_id", id)

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteStudent deletes a student and its user
// @Summary Delete student
// @Tags student
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /student/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Deleting student", "student_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportStudents downloads the student list as a spreadsheet
// @Summary Export students
// @Tags student
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /student/export [get]
func (h *StudentHandler) ExportStudents(c *gin.Context) {
	h.export(c, h.exporter, services.EntityStudent)
}
