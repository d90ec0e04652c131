package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/repositories"
)

type TeacherRepository struct {
	uow *UnitOfWork
}

// Add stages an insert; the id is assigned when the unit of work is saved
func (r *TeacherRepository) Add(ctx context.Context, teacher *models.Teacher) error {
	if teacher == nil {
		return repositories.ErrNilEntity
	}
	return r.uow.stage("insert teacher", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(teacher).Error
	})
}

// GetAll returns every teacher with its user
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var teachers []*models.Teacher
	if err := db.Preload("User").Order("id").Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	return teachers, nil
}

func (r *TeacherRepository) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var teacher models.Teacher
	if err := db.Preload("User").First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repositories.NotFoundError{Entity: "teacher", ID: id}
		}
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	return &teacher, nil
}

// Update copies every mutable field of teacher onto the stored row and stages
// the write, including the linked user when teacher carries one
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	if teacher == nil {
		return repositories.ErrNilEntity
	}

	existing, err := r.GetByID(ctx, teacher.ID)
	if err != nil {
		return err
	}
	models.CopyTeacher(existing, teacher)

	return r.uow.stage("update teacher", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(existing).Error; err != nil {
			return err
		}
		if existing.User != nil {
			return tx.Omit(clause.Associations).Save(existing.User).Error
		}
		return nil
	})
}

// Delete stages removal of the teacher and then of its user
func (r *TeacherRepository) Delete(ctx context.Context, id uint) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return stageProfileDelete(r.uow, "teacher", &models.Teacher{}, existing.ID, existing.UserID)
}

func (r *TeacherRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.uow, &models.Teacher{}, id)
}
