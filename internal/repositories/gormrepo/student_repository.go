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

type StudentRepository struct {
	uow *UnitOfWork
}

// Add stages an insert; the id is assigned when the unit of work is saved
func (r *StudentRepository) Add(ctx context.Context, student *models.Student) error {
	if student == nil {
		return repositories.ErrNilEntity
	}
	return r.uow.stage("insert student", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(student).Error
	})
}

// GetAll returns every student with its user
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var students []*models.Student
	if err := db.Preload("User").Order("id").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var student models.Student
	if err := db.Preload("User").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repositories.NotFoundError{Entity: "student", ID: id}
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

// Update copies every mutable field of student onto the stored row and stages
// the write, including the linked user when student carries one
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if student == nil {
		return repositories.ErrNilEntity
	}

	existing, err := r.GetByID(ctx, student.ID)
	if err != nil {
		return err
	}
	models.CopyStudent(existing, student)

	return r.uow.stage("update student", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(existing).Error; err != nil {
			return err
		}
		if existing.User != nil {
			return tx.Omit(clause.Associations).Save(existing.User).Error
		}
		return nil
	})
}

// Delete stages removal of the student and then of its user
func (r *StudentRepository) Delete(ctx context.Context, id uint) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return stageProfileDelete(r.uow, "student", &models.Student{}, existing.ID, existing.UserID)
}

func (r *StudentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.uow, &models.Student{}, id)
}
