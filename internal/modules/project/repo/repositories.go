package repo

import (
	"github.com/111dd/big3d/internal/model"

	"gorm.io/gorm"
)

type ProjectStore interface {
	ListWithImages() ([]model.Project, error)
	FindWithImages(id string) (*model.Project, error)
	ExistsByID(id string) (bool, error)
	ExistsByKey(key string) (bool, error)
	CreateWithImages(project *model.Project, images []model.Image) error
	UpdateFields(id string, updates map[string]interface{}) error
	ReplaceImages(projectID string, images []model.Image) error
	DeleteWithImages(id string) error
	CountImages(projectID string) (int64, error)
	CreateImage(image *model.Image) error
}

func NewProjectRepository(db *gorm.DB) ProjectStore {
	return &ProjectRepository{db: db}
}
