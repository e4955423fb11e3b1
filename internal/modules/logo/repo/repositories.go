package repo

import (
	"github.com/111dd/big3d/internal/model"

	"gorm.io/gorm"
)

type LogoStore interface {
	FindActive() (*model.SiteLogo, error)
	CreateActive(logo *model.SiteLogo) error
}

func NewLogoRepository(db *gorm.DB) LogoStore {
	return &LogoRepository{db: db}
}
