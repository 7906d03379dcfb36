package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DataType string

const (
	DataTypeVideo   DataType = "Video"
	DataTypePodcast DataType = "Podcast"
)

// Thumbnail nhúng vào Video và Topic
type Thumbnail struct {
	URL    string `gorm:"type:text" json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Video struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"size:200;uniqueIndex;not null" json:"title"`
	OriginalTitle   string    `gorm:"size:200" json:"original_title"`
	OriginURL       string    `gorm:"type:text" json:"origin_url"`
	Thumbnail       Thumbnail `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	ChannelTitle    string    `gorm:"size:200" json:"channel_title"`
	Duration        string    `gorm:"size:30;not null" json:"duration"` // mã ISO 8601, vd PT23M21S
	DefaultLanguage string    `gorm:"size:5;not null" json:"default_language"`
	DataType        DataType  `gorm:"type:varchar(10);not null" json:"data_type"` // Video | Podcast
	UserID          uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	User      *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Topics    []VideoTopic  `gorm:"foreignKey:VideoID" json:"topics,omitempty"`
	Documents []UrlDocument `gorm:"foreignKey:VideoID" json:"documents,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
