package repo

import (
	"time"

	"github.com/111dd/big3d/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

// orderedImages 保证 images 始终按展示顺序返回
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

func (r *ProjectRepository) ListWithImages() ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Preload("Images", orderedImages).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindWithImages(id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Preload("Images", orderedImages).
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProjectRepository) ExistsByKey(key string) (bool, error) {
	var count int64
	// key 在 MySQL 中是保留字，走 map 条件让 gorm 对列名加引号
	if err := r.db.Model(&model.Project{}).
		Where(map[string]interface{}{"key": key}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProjectRepository) CreateWithImages(project *model.Project, images []model.Image) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProjectID = project.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) UpdateFields(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return r.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error
}

// ReplaceImages 全量替换项目图片：同一事务内先删后插，避免留下无图中间态
func (r *ProjectRepository) ReplaceImages(projectID string, images []model.Image) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProjectID = projectID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Project{}).Where("id = ?", projectID).
			Update("updated_at", time.Now()).Error
	})
}

// DeleteWithImages 删除不存在的项目同样返回成功（幂等清理语义）
func (r *ProjectRepository) DeleteWithImages(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Project{}).Error
	})
}

func (r *ProjectRepository) CountImages(projectID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProjectRepository) CreateImage(image *model.Image) error {
	return r.db.Create(image).Error
}
