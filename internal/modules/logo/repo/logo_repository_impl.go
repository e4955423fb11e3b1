package repo

import (
	"github.com/111dd/big3d/internal/model"

	"gorm.io/gorm"
)

type LogoRepository struct {
	db *gorm.DB
}

func (r *LogoRepository) FindActive() (*model.SiteLogo, error) {
	var logo model.SiteLogo
	if err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").First(&logo).Error; err != nil {
		return nil, err
	}
	return &logo, nil
}

// CreateActive 同一事务内先取消全部激活再插入新行，
// 保证任意时刻至多一行 is_active = true
func (r *LogoRepository) CreateActive(logo *model.SiteLogo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SiteLogo{}).Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		logo.IsActive = true
		return tx.Create(logo).Error
	})
}
