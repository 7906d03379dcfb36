package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"github.com/google/uuid"
)

// SecurePassword băm mật khẩu theo hợp đồng của hệ thống:
// hex(HMAC-SHA512(salt, password))
func SecurePassword(salt, plainPassword string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(plainPassword))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewSalt sinh salt mới cho mỗi user
func NewSalt() string {
	return uuid.New().String()
}
