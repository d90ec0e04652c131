package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/models"
)

type userService struct {
	baseService
}

func NewUserService(deps Dependencies) UserService {
	return &userService{baseService: newBaseService(deps, "user")}
}

// List serves the user list through the cache
func (s *userService) List(ctx context.Context) ([]models.UserDto, error) {
	users, err := s.cache.GetUsers(ctx, s.uows)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return models.ToUserDtos(users), nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.UserDto, error) {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := models.ToUserDto(user)
	return &dto, nil
}

func (s *userService) Create(ctx context.Context, req *models.UserCreateDto) (*models.UserDto, error) {
	s.logger.InfoContext(ctx, "Creating user", "username", req.Username)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	user := models.NewUser(req, hash)
	if err := uow.Users().Add(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.cache.users.Invalidate(ctx)

	dto := models.ToUserDto(user)
	s.committed(ctx, "user", "create", events.UserCreated, dto.ID, dto)
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *models.UserUpdateDto) error {
	if req.ID != id {
		return ErrIDMismatch
	}
	if err := s.validate(req); err != nil {
		return err
	}

	password, err := hashOptional(s.hasher, req.Password)
	if err != nil {
		return err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return err
	}
	models.ApplyUserUpdate(user, req, password)

	if err := uow.Users().Update(ctx, user); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if s.cache.invalidateOnUpdate {
		s.cache.users.Invalidate(ctx)
	}

	s.committed(ctx, "user", "update", events.UserUpdated, id, models.ToUserDto(user))
	return nil
}

// Delete removes the user together with any admin, teacher or student profile
func (s *userService) Delete(ctx context.Context, id uint) error {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := uow.Users().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.cache.users.Invalidate(ctx)
	s.cache.admins.Invalidate(ctx)
	s.cache.teachers.Invalidate(ctx)
	s.cache.students.Invalidate(ctx)

	s.committed(ctx, "user", "delete", events.UserDeleted, id, nil)
	return nil
}
