package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserVideo đánh dấu video yêu thích của người dùng,
// duy nhất theo cặp (user_id, video_id)
type UserVideo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_video" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_video" json:"video_id"`
	Favorite  bool      `gorm:"default:false" json:"favorite"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Video *Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (uv *UserVideo) BeforeCreate(tx *gorm.DB) error {
	if uv.ID == uuid.Nil {
		uv.ID = uuid.New()
	}
	return nil
}
