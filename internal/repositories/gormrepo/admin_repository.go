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

type AdminRepository struct {
	uow *UnitOfWork
}

// Add stages an insert; the id is assigned when the unit of work is saved
func (r *AdminRepository) Add(ctx context.Context, admin *models.Admin) error {
	if admin == nil {
		return repositories.ErrNilEntity
	}
	return r.uow.stage("insert admin", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(admin).Error
	})
}

// GetAll returns every admin with its user
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var admins []*models.Admin
	if err := db.Preload("User").Order("id").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	db, err := r.uow.session(ctx)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	if err := db.Preload("User").First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &repositories.NotFoundError{Entity: "admin", ID: id}
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// Update copies every mutable field of admin onto the stored row and stages
// the write, including the linked user when admin carries one
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	if admin == nil {
		return repositories.ErrNilEntity
	}

	existing, err := r.GetByID(ctx, admin.ID)
	if err != nil {
		return err
	}
	models.CopyAdmin(existing, admin)

	return r.uow.stage("update admin", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(existing).Error; err != nil {
			return err
		}
		if existing.User != nil {
			return tx.Omit(clause.Associations).Save(existing.User).Error
		}
		return nil
	})
}

// Delete stages removal of the admin and then of its user
func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return stageProfileDelete(r.uow, "admin", &models.Admin{}, existing.ID, existing.UserID)
}

func (r *AdminRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.uow, &models.Admin{}, id)
}
