package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/auth/service"
	userDto "pesantrenku_backend/internals/features/users/user/dto"
	userModel "pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/lifecycle"
)

type AuthController struct {
	DB       *gorm.DB
	Users    lifecycle.Repository[userModel.UserModel]
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Users:    lifecycle.NewRepository[userModel.UserModel](db),
		Validate: validator.New(),
	}
}

/* ========================== REGISTER ========================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.UserName = strings.TrimSpace(body.UserName)
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    body.Email,
		Password: hashed,
		Role:     constants.RoleUser,
		IsActive: true,
	}
	if err := ctrl.Users.Create(&user); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Register gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", userDto.ToUserResponse(user))
}

/* ========================== LOGIN ========================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// default exclusion: user yang sudah di-tombstone tidak bisa login
	var user userModel.UserModel
	if err := ctrl.Users.FindOne(lifecycle.Predicate{"email": body.Email}, &user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !service.CheckPassword(user.Password, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	now := time.Now()
	access, err := service.IssueAccessToken(user, now)
	if err != nil {
		log.Println("[ERROR] IssueAccessToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user.UserID, now)
	if err != nil {
		log.Println("[ERROR] IssueRefreshToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	setRefreshCookie(c, refresh, now.Add(service.RefreshTokenTTL))

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         userDto.ToUserResponse(user),
	})
}

/* ========================== REFRESH ========================== */

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := service.ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	known, err := service.RefreshTokenKnown(ctrl.DB, refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !known {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := ctrl.Users.FindOne(lifecycle.Predicate{"user_id": userID}, &user); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus hash lama, terbitkan pasangan baru
	if err := service.RotateRefreshToken(ctrl.DB, refreshCookie); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	now := time.Now()
	access, err := service.IssueAccessToken(user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user.UserID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	setRefreshCookie(c, refresh, now.Add(service.RefreshTokenTTL))

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{"access_token": access})
}

/* ========================== LOGOUT ========================== */

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai (kalau ada)
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token := strings.TrimSpace(parts[1])
		exp := tokenExpiry(token)
		if err := service.BlacklistAccessToken(ctrl.DB, token, exp); err != nil && !helper.IsUniqueViolation(err) {
			log.Println("[ERROR] Gagal blacklist token:", err)
		}
	}

	// hapus refresh token yang dikenal
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if err := service.RotateRefreshToken(ctrl.DB, refreshCookie); err != nil {
			log.Println("[ERROR] Gagal hapus refresh token:", err)
		}
	}
	clearRefreshCookie(c)

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ========================== helpers ========================== */

func setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/api/auth",
	})
}

// tokenExpiry membaca exp tanpa verifikasi penuh — hanya untuk TTL blacklist.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if expFloat, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(expFloat), 0)
	}
	return time.Now().Add(service.AccessTokenTTL)
}
