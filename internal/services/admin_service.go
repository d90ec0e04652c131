package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/models"
)

type adminService struct {
	baseService
}

func NewAdminService(deps Dependencies) AdminService {
	return &adminService{baseService: newBaseService(deps, "admin")}
}

// List serves the admin list through the cache
func (s *adminService) List(ctx context.Context) ([]models.AdminDto, error) {
	admins, err := s.cache.GetAdmins(ctx, s.uows)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return models.ToAdminDtos(admins), nil
}

func (s *adminService) GetByID(ctx context.Context, id uint) (*models.AdminDto, error) {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	admin, err := uow.Admins().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := models.ToAdminDto(admin)
	return &dto, nil
}

func (s *adminService) Create(ctx context.Context, req *models.AdminCreateDto) (*models.AdminDto, error) {
	s.logger.InfoContext(ctx, "Creating admin", "user_id", req.UserID)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := s.requireUser(ctx, uow, req.UserID); err != nil {
		return nil, err
	}

	admin := models.NewAdmin(req)
	if err := uow.Admins().Add(ctx, admin); err != nil {
		return nil, err
	}
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	s.cache.admins.Invalidate(ctx)

	created, err := uow.Admins().GetByID(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	dto := models.ToAdminDto(created)
	s.committed(ctx, "admin", "create", events.AdminCreated, dto.ID, dto)
	return &dto, nil
}

func (s *adminService) Update(ctx context.Context, id uint, req *models.AdminUpdateDto) error {
	if req.ID != id {
		return ErrIDMismatch
	}
	if err := s.validate(req); err != nil {
		return err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	admin, err := uow.Admins().GetByID(ctx, id)
	if err != nil {
		return err
	}

	var password *string
	if req.User != nil {
		if password, err = hashOptional(s.hasher, req.User.Password); err != nil {
			return err
		}
	}
	models.ApplyAdminUpdate(admin, req, password)

	if err := uow.Admins().Update(ctx, admin); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	if s.cache.invalidateOnUpdate {
		s.cache.admins.Invalidate(ctx)
	}

	s.committed(ctx, "admin", "update", events.AdminUpdated, id, models.ToAdminDto(admin))
	return nil
}

// Delete removes the admin and its user
func (s *adminService) Delete(ctx context.Context, id uint) error {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := uow.Admins().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	s.cache.admins.Invalidate(ctx)
	s.cache.users.Invalidate(ctx)

	s.committed(ctx, "admin", "delete", events.AdminDeleted, id, nil)
	return nil
}
