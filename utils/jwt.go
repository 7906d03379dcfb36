package utils

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vnkhanh/video-catalog-backend/config"
)

// Claims nhúng trong token: id người dùng và id vai trò
type Claims struct {
	UserID string `json:"id"`
	RoleID string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken ký token HS512 với cấu hình được truyền vào
func GenerateToken(cfg config.JWTConfig, userID, roleID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ExpiresIn)),
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Issuer:    cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// VerifyToken kiểm tra chữ ký và hạn token, trả về claims
func VerifyToken(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, NewNotAuthorized()
	}
	return claims, nil
}

// TokenFromHeader tách token từ giá trị header Authorization.
// Dạng chuẩn là "Bearer <token>"; token trần vẫn được chấp nhận
// để tương thích với client cũ. Mọi entry point đều đi qua hàm này.
func TokenFromHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", NewNotAuthorized()
	}

	parts := strings.Split(header, " ")
	if len(parts) == 2 {
		if parts[1] == "" {
			return "", NewNotAuthorized()
		}
		return parts[1], nil
	}
	return header, nil
}
