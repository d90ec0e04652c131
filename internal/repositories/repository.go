package repositories

import (
	"context"

	"github.com/SAP-F-2025/english-school-service/internal/models"
)

// AdminRepository stages writes on its unit of work and reads straight from the database.
// Deleting an admin also deletes the linked user.
type AdminRepository interface {
	Add(ctx context.Context, admin *models.Admin) error
	GetAll(ctx context.Context) ([]*models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// TeacherRepository mirrors AdminRepository for teachers
type TeacherRepository interface {
	Add(ctx context.Context, teacher *models.Teacher) error
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// StudentRepository mirrors AdminRepository for students
type StudentRepository interface {
	Add(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// UserRepository manages accounts. Deleting a user does not touch profiles.
type UserRepository interface {
	Add(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UnitOfWork groups the four repositories over one database session. Writes
// are queued until Save, which commits all of them in a single transaction.
// A unit of work belongs to one request and must not be shared.
type UnitOfWork interface {
	Admins() AdminRepository
	Teachers() TeacherRepository
	Students() StudentRepository
	Users() UserRepository

	// Save commits every staged write or none of them
	Save(ctx context.Context) error

	// Close discards unsaved writes; safe to call more than once
	Close() error
}

// UnitOfWorkFactory hands out a fresh UnitOfWork per logical operation
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) UnitOfWork
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize verifies the database connection
	Initialize(ctx context.Context) error

	// UnitOfWork returns the factory for request-scoped units of work
	UnitOfWork() UnitOfWorkFactory

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
