package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/english-school-service/internal/cache"
	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/repositories"
)

// ListCache holds one cache region per entity list. Each Get* reads through
// its region and reloads from a fresh unit of work on a miss.
type ListCache struct {
	store              cache.Store
	admins             *cache.Region[[]*models.Admin]
	teachers           *cache.Region[[]*models.Teacher]
	students           *cache.Region[[]*models.Student]
	users              *cache.Region[[]*models.User]
	invalidateOnUpdate bool
}

func NewListCache(store cache.Store, policy cache.EntryPolicy, invalidateOnUpdate bool, logger *slog.Logger) *ListCache {
	return &ListCache{
		store:              store,
		admins:             cache.NewRegion[[]*models.Admin](cache.KeyAdminsList, store, policy, logger),
		teachers:           cache.NewRegion[[]*models.Teacher](cache.KeyTeachersList, store, policy, logger),
		students:           cache.NewRegion[[]*models.Student](cache.KeyStudentsList, store, policy, logger),
		users:              cache.NewRegion[[]*models.User](cache.KeyUsersList, store, policy, logger),
		invalidateOnUpdate: invalidateOnUpdate,
	}
}

func (c *ListCache) GetAdmins(ctx context.Context, uows repositories.UnitOfWorkFactory) ([]*models.Admin, error) {
	return c.admins.GetOrRefill(ctx, func(ctx context.Context) ([]*models.Admin, error) {
		uow := uows.Begin(ctx)
		defer uow.Close()
		return uow.Admins().GetAll(ctx)
	})
}

func (c *ListCache) GetTeachers(ctx context.Context, uows repositories.UnitOfWorkFactory) ([]*models.Teacher, error) {
	return c.teachers.GetOrRefill(ctx, func(ctx context.Context) ([]*models.Teacher, error) {
		uow := uows.Begin(ctx)
		defer uow.Close()
		return uow.Teachers().GetAll(ctx)
	})
}

func (c *ListCache) GetStudents(ctx context.Context, uows repositories.UnitOfWorkFactory) ([]*models.Student, error) {
	return c.students.GetOrRefill(ctx, func(ctx context.Context) ([]*models.Student, error) {
		uow := uows.Begin(ctx)
		defer uow.Close()
		return uow.Students().GetAll(ctx)
	})
}

func (c *ListCache) GetUsers(ctx context.Context, uows repositories.UnitOfWorkFactory) ([]*models.User, error) {
	return c.users.GetOrRefill(ctx, func(ctx context.Context) ([]*models.User, error) {
		uow := uows.Begin(ctx)
		defer uow.Close()
		return uow.Users().GetAll(ctx)
	})
}

// Ping checks the backing store
func (c *ListCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
