package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoTopic liên kết Video và Topic.
// Mô hình hiện tại: mỗi video có đúng một topic.
type VideoTopic struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"video_id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index" json:"topic_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Topic *Topic `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	Video *Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (vt *VideoTopic) BeforeCreate(tx *gorm.DB) error {
	if vt.ID == uuid.Nil {
		vt.ID = uuid.New()
	}
	return nil
}
