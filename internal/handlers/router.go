package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SAP-F-2025/english-school-service/internal/services"
	"github.com/SAP-F-2025/english-school-service/internal/utils"
)

const serviceName = "english-school-service"

type HandlerManager struct {
	adminHandler   *AdminHandler
	teacherHandler *TeacherHandler
	studentHandler *StudentHandler
	userHandler    *UserHandler
	serviceManager services.ServiceManager
	logger         utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	exporter := serviceManager.Export()

	return &HandlerManager{
		adminHandler:   NewAdminHandler(serviceManager.Admin(), exporter, logger),
		teacherHandler: NewTeacherHandler(serviceManager.Teacher(), exporter, logger),
		studentHandler: NewStudentHandler(serviceManager.Student(), exporter, logger),
		userHandler:    NewUserHandler(serviceManager.User(), exporter, logger),
		serviceManager: serviceManager,
		logger:         logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		admins := api.Group("/admin")
		{
			admins.GET("", hm.adminHandler.ListAdmins)
			admins.GET("/export", hm.adminHandler.ExportAdmins)
			admins.GET("/:id", hm.adminHandler.GetAdmin)
			admins.POST("", hm.adminHandler.CreateAdmin)
			admins.PUT("/:id", hm.adminHandler.UpdateAdmin)
			admins.DELETE("/:id", hm.adminHandler.DeleteAdmin)
		}

		teachers := api.Group("/teacher")
		{
			teachers.GET("", hm.teacherHandler.ListTeachers)
			teachers.GET("/export", hm.teacherHandler.ExportTeachers)
			teachers.GET("/:id", hm.teacherHandler.GetTeacher)
			teachers.POST("", hm.teacherHandler.CreateTeacher)
			teachers.PUT("/:id", hm.teacherHandler.UpdateTeacher)
			teachers.DELETE("/:id", hm.teacherHandler.DeleteTeacher)
		}

		students := api.Group("/student")
		{
			students.GET("", hm.studentHandler.ListStudents)
			students.GET("/export", hm.studentHandler.ExportStudents)
			students.GET("/:id", hm.studentHandler.GetStudent)
			students.POST("", hm.studentHandler.CreateStudent)
			students.PUT("/:id", hm.studentHandler.UpdateStudent)
			students.DELETE("/:id", hm.studentHandler.DeleteStudent)
		}

		users := api.Group("/user")
		{
			users.GET("", hm.userHandler.ListUsers)
			users.GET("/export", hm.userHandler.ExportUsers)
			users.GET("/:id", hm.userHandler.GetUser)
			users.POST("", hm.userHandler.CreateUser)
			users.PUT("/:id", hm.userHandler.UpdateUser)
			users.DELETE("/:id", hm.userHandler.DeleteUser)
		}
	}

	router.GET("/health", hm.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (hm *HandlerManager) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := hm.serviceManager.HealthCheck(ctx); err != nil {
		utils.GetLogger(c, hm.logger).Warn("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
