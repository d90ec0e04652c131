package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/repositories"
	"github.com/SAP-F-2025/english-school-service/internal/validator"
)

// ServiceManagerConfig holds the dependencies shared by every service
type ServiceManagerConfig struct {
	Repositories repositories.RepositoryManager
	Cache        *ListCache
	Validator    *validator.Validator
	Publisher    events.EventPublisher
	Hasher       PasswordHasher
	Logger       *slog.Logger
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	repo      repositories.RepositoryManager
	cache     *ListCache
	validator *validator.Validator
	publisher events.EventPublisher
	hasher    PasswordHasher
	logger    *slog.Logger

	adminService   AdminService
	teacherService TeacherService
	studentService StudentService
	userService    UserService
	exportService  ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(cfg ServiceManagerConfig) ServiceManager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &serviceManager{
		repo:      cfg.Repositories,
		cache:     cfg.Cache,
		validator: cfg.Validator,
		publisher: publisher,
		hasher:    cfg.Hasher,
		logger:    logger,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	if sm.repo == nil || sm.cache == nil || sm.validator == nil {
		return fmt.Errorf("failed to initialize services: missing repositories, cache or validator")
	}

	deps := Dependencies{
		UnitOfWork: sm.repo.UnitOfWork(),
		Cache:      sm.cache,
		Validator:  sm.validator,
		Publisher:  sm.publisher,
		Hasher:     sm.hasher,
		Logger:     sm.logger,
	}

	sm.adminService = NewAdminService(deps)
	sm.teacherService = NewTeacherService(deps)
	sm.studentService = NewStudentService(deps)
	sm.userService = NewUserService(deps)
	sm.exportService = NewExportService(sm.adminService, sm.teacherService, sm.studentService, sm.userService, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// Service getters
func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.adminService
}

func (sm *serviceManager) Teacher() TeacherService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.teacherService
}

func (sm *serviceManager) Student() StudentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.studentService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.userService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	if err := sm.cache.Ping(ctx); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.publisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	if sm.repo != nil {
		if err := sm.repo.Shutdown(ctx); err != nil {
			sm.logger.Error("Failed to shutdown repository manager", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}
