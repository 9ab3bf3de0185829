package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID membaca user_id dari locals (diisi AuthMiddleware).
// uuid.Nil kalau tidak ada / bukan UUID valid — caller yang memutuskan fatal atau tidak.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GetUserRole membaca role dari locals, default "user"
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		return "user"
	}
	return role
}

// ActorPtr: pointer acting-user untuk kolom deleted_by.
// nil kalau request tanpa identitas (tombstone tetap jalan, deleted_by = NULL).
func ActorPtr(c *fiber.Ctx) *uuid.UUID {
	id := GetUserUUID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}
