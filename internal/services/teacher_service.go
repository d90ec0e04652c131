package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/models"
)

type teacherService struct {
	baseService
}

func NewTeacherService(deps Dependencies) TeacherService {
	return &teacherService{baseService: newBaseService(deps, "teacher")}
}

// List serves the teacher list through the cache
func (s *teacherService) List(ctx context.Context) ([]models.TeacherDto, error) {
	teachers, err := s.cache.GetTeachers(ctx, s.uows)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	return models.ToTeacherDtos(teachers), nil
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (*models.TeacherDto, error) {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	teacher, err := uow.Teachers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := models.ToTeacherDto(teacher)
	return &dto, nil
}

func (s *teacherService) Create(ctx context.Context, req *models.TeacherCreateDto) (*models.TeacherDto, error) {
	s.logger.InfoContext(ctx, "Creating teacher", "user_id", req.UserID)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := s.requireUser(ctx, uow, req.UserID); err != nil {
		return nil, err
	}

	teacher := models.NewTeacher(req)
	if err := uow.Teachers().Add(ctx, teacher); err != nil {
		return nil, err
	}
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	s.cache.teachers.Invalidate(ctx)

	created, err := uow.Teachers().GetByID(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	dto := models.ToTeacherDto(created)
	s.committed(ctx, "teacher", "create", events.TeacherCreated, dto.ID, dto)
	return &dto, nil
}

func (s *teacherService) Update(ctx context.Context, id uint, req *models.TeacherUpdateDto) error {
	if req.ID != id {
		return ErrIDMismatch
	}
	if err := s.validate(req); err != nil {
		return err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	teacher, err := uow.Teachers().GetByID(ctx, id)
	if err != nil {
		return err
	}

	var password *string
	if req.User != nil {
		if password, err = hashOptional(s.hasher, req.User.Password); err != nil {
			return err
		}
	}
	models.ApplyTeacherUpdate(teacher, req, password)

	if err := uow.Teachers().Update(ctx, teacher); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	if s.cache.invalidateOnUpdate {
		s.cache.teachers.Invalidate(ctx)
	}

	s.committed(ctx, "teacher", "update", events.TeacherUpdated, id, models.ToTeacherDto(teacher))
	return nil
}

// Delete removes the teacher and its user
func (s *teacherService) Delete(ctx context.Context, id uint) error {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := uow.Teachers().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	s.cache.teachers.Invalidate(ctx)
	s.cache.users.Invalidate(ctx)

	s.committed(ctx, "teacher", "delete", events.TeacherDeleted, id, nil)
	return nil
}
