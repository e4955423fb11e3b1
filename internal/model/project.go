package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Key         string    `json:"key" gorm:"not null;uniqueIndex;size:255"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	Images      []Image   `json:"images" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate ID 由服务端生成，不接受客户端传入的主键
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
