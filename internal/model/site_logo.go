package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteLogo 站点 Logo 历史记录，至多一行 is_active = true
type SiteLogo struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Type      string    `json:"type" gorm:"not null;size:64"`
	URL       string    `json:"url" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *SiteLogo) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
