package gormrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/english-school-service/internal/repositories"
)

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	db      *gorm.DB
	factory *UnitOfWorkFactory
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{db: db}
}

// Initialize tests the database connection and prepares the unit of work factory
func (rm *RepositoryManager) Initialize(ctx context.Context) error {
	if rm.db == nil {
		return fmt.Errorf("database connection is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rm.ping(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.factory = NewUnitOfWorkFactory(rm.db)
	return nil
}

// UnitOfWork returns the factory for request-scoped units of work
func (rm *RepositoryManager) UnitOfWork() repositories.UnitOfWorkFactory {
	if rm.factory == nil {
		rm.factory = NewUnitOfWorkFactory(rm.db)
	}
	return rm.factory
}

// HealthCheck checks the health of the database connection
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.db == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.ping(ctx)
}

// Shutdown closes the database connection
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.db == nil {
		return nil
	}

	sqlDB, err := rm.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (rm *RepositoryManager) ping(ctx context.Context) error {
	sqlDB, err := rm.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

var _ repositories.RepositoryManager = (*RepositoryManager)(nil)
