package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	authModel "pesantrenku_backend/internals/features/users/auth/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrMissingSecret = errors.New("JWT secret belum diset")

// IssueAccessToken membuat access JWT (sub = user_id, plus role & user_name).
func IssueAccessToken(u userModel.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingSecret
	}
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh JWT + menyimpan hash-nya di DB.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", ErrMissingSecret
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshToken{
		UserID:    userID,
		Token:     ComputeRefreshHash(raw),
		ExpiresAt: now.Add(RefreshTokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// ParseRefreshToken memverifikasi refresh JWT dan mengembalikan user id-nya.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	if configs.JWTRefreshSecret == "" {
		return uuid.Nil, ErrMissingSecret
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// RefreshTokenKnown: hash refresh harus ada di DB (rotasi = hapus hash lama).
func RefreshTokenKnown(db *gorm.DB, raw string) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ?)`, ComputeRefreshHash(raw)).Scan(&exists).Error
	return exists, err
}

func RotateRefreshToken(db *gorm.DB, raw string) error {
	return db.Where("token = ?", ComputeRefreshHash(raw)).Delete(&authModel.RefreshToken{}).Error
}

// ComputeRefreshHash: HMAC-SHA256 supaya DB leak tidak membocorkan token hidup.
func ComputeRefreshHash(raw string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// BlacklistAccessToken menandai access token sebagai tidak berlaku sampai exp.
func BlacklistAccessToken(db *gorm.DB, token string, expiredAt time.Time) error {
	row := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt,
	}
	return db.Create(&row).Error
}
