package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/english-school-service/internal/models"
)

// stageProfileDelete queues the profile row delete followed by its user.
// This is the only place the profile-to-user cascade lives.
func stageProfileDelete(u *UnitOfWork, entity string, model interface{}, id, userID uint) error {
	return u.stage("delete "+entity, func(tx *gorm.DB) error {
		if err := tx.Delete(model, id).Error; err != nil {
			return err
		}
		if userID == 0 {
			return nil
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

func exists(ctx context.Context, u *UnitOfWork, model interface{}, id uint) (bool, error) {
	db, err := u.session(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}
