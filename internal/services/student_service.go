package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/english-school-service/internal/events"
	"github.com/SAP-F-2025/english-school-service/internal/models"
)

type studentService struct {
	baseService
}

func NewStudentService(deps Dependencies) StudentService {
	return &studentService{baseService: newBaseService(deps, "student")}
}

// List serves the student list through the cache
func (s *studentService) List(ctx context.Context) ([]models.StudentDto, error) {
	students, err := s.cache.GetStudents(ctx, s.uows)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return models.ToStudentDtos(students), nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*models.StudentDto, error) {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	student, err := uow.Students().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := models.ToStudentDto(student)
	return &dto, nil
}

func (s *studentService) Create(ctx context.Context, req *models.StudentCreateDto) (*models.StudentDto, error) {
	s.logger.InfoContext(ctx, "Creating student", "user_id", req.UserID)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := s.requireUser(ctx, uow, req.UserID); err != nil {
		return nil, err
	}

	student := models.NewStudent(req)
	if err := uow.Students().Add(ctx, student); err != nil {
		return nil, err
	}
	if err := uow.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	s.cache.students.Invalidate(ctx)

	created, err := uow.Students().GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	dto := models.ToStudentDto(created)
	s.committed(ctx, "student", "create", events.StudentCreated, dto.ID, dto)
	return &dto, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *models.StudentUpdateDto) error {
	if req.ID != id {
		return ErrIDMismatch
	}
	if err := s.validate(req); err != nil {
		return err
	}

	uow := s.uows.Begin(ctx)
	defer uow.Close()

	student, err := uow.Students().GetByID(ctx, id)
	if err != nil {
		return err
	}

	var password *string
	if req.User != nil {
		if password, err = hashOptional(s.hasher, req.User.Password); err != nil {
			return err
		}
	}
	models.ApplyStudentUpdate(student, req, password)

	if err := uow.Students().Update(ctx, student); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if s.cache.invalidateOnUpdate {
		s.cache.students.Invalidate(ctx)
	}

	s.committed(ctx, "student", "update", events.StudentUpdated, id, models.ToStudentDto(student))
	return nil
}

// Delete removes the student and its user
func (s *studentService) Delete(ctx context.Context, id uint) error {
	uow := s.uows.Begin(ctx)
	defer uow.Close()

	if err := uow.Students().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	s.cache.students.Invalidate(ctx)
	s.cache.users.Invalidate(ctx)

	s.committed(ctx, "student", "delete", events.StudentDeleted, id, nil)
	return nil
}
