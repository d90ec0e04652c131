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

type UserRepository struct {
	uow *UnitOfWork
}

func (r *UserRepository) Add(ctx context.Context, user *models.User) error {
	if user == nil {
		return repositories.ErrNilEntity
	}
	return r.uow.stage("insert user", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(user).Error
	})
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repositories.NotFoundError{Entity: "user", ID: id}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil {
		return repositories.ErrNilEntity
	}

	existing, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	models.CopyUser(existing, user)

	return r.uow.stage("update user", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(existing).Error
	})
}

// Delete stages removal of the user's profiles followed by the user itself
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.uow.session(ctx)
	if err != nil {
		return err
	}

	var user models.User
	if err := db.Preload("Admin").Preload("Teacher").Preload("Student").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &repositories.NotFoundError{Entity: "user", ID: id}
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	return r.uow.stage("delete user", func(tx *gorm.DB) error {
		if user.Admin != nil {
			if err := tx.Delete(&models.Admin{}, user.Admin.ID).Error; err != nil {
				return err
			}
		}
		if user.Teacher != nil {
			if err := tx.Delete(&models.Teacher{}, user.Teacher.ID).Error; err != nil {
				return err
			}
		}
		if user.Student != nil {
			if err := tx.Delete(&models.Student{}, user.Student.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.uow, &models.User{}, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
