package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"size:150;not null" json:"email"`
	// Mật khẩu lưu dạng hex(HMAC-SHA512(salt, password)),
	// không bao giờ trả về trong JSON
	EncryptPassword string    `gorm:"type:text;not null" json:"-"`
	Salt            string    `gorm:"size:64;not null" json:"-"`
	RoleID          uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`
	IsDeleted       bool      `gorm:"default:false" json:"is_deleted"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Role      Role        `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Favorites []UserVideo `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
