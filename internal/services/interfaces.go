package services

import (
	"context"
	"io"

	"github.com/SAP-F-2025/english-school-service/internal/models"
)

// ===== ENTITY SERVICES =====

type AdminService interface {
	List(ctx context.Context) ([]models.AdminDto, error)
	GetByID(ctx context.Context, id uint) (*models.AdminDto, error)
	Create(ctx context.Context, req *models.AdminCreateDto) (*models.AdminDto, error)
	Update(ctx context.Context, id uint, req *models.AdminUpdateDto) error
	Delete(ctx context.Context, id uint) error
}

type TeacherService interface {
	List(ctx context.Context) ([]models.TeacherDto, error)
	GetByID(ctx context.Context, id uint) (*models.TeacherDto, error)
	Create(ctx context.Context, req *models.TeacherCreateDto) (*models.TeacherDto, error)
	Update(ctx context.Context, id uint, req *models.TeacherUpdateDto) error
	Delete(ctx context.Context, id uint) error
}

type StudentService interface {
	List(ctx context.Context) ([]models.StudentDto, error)
	GetByID(ctx context.Context, id uint) (*models.StudentDto, error)
	Create(ctx context.Context, req *models.StudentCreateDto) (*models.StudentDto, error)
	Update(ctx context.Context, id uint, req *models.StudentUpdateDto) error
	Delete(ctx context.Context, id uint) error
}

type UserService interface {
	List(ctx context.Context) ([]models.UserDto, error)
	GetByID(ctx context.Context, id uint) (*models.UserDto, error)
	Create(ctx context.Context, req *models.UserCreateDto) (*models.UserDto, error)
	Update(ctx context.Context, id uint, req *models.UserUpdateDto) error
	Delete(ctx context.Context, id uint) error
}

// ===== EXPORT =====

// ExportService writes entity lists as spreadsheets
type ExportService interface {
	Export(ctx context.Context, entity Entity, w io.Writer) error
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Admin() AdminService
	Teacher() TeacherService
	Student() StudentService
	User() UserService
	Export() ExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
