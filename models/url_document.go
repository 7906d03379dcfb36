package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UrlDocument là tài liệu đính kèm video, chỉ lưu link
type UrlDocument struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	URLLink   string    `gorm:"type:text;not null" json:"url_link"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *UrlDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
