package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Image struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	ProjectID   string `json:"project_id" gorm:"not null;index;size:36"`
	URL         string `json:"url" gorm:"not null"`
	IsThumbnail bool   `json:"is_thumbnail" gorm:"not null"`
	OrderIndex  int    `json:"order_index" gorm:"not null"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
