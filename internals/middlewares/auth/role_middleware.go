package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "pesantrenku_backend/internals/helpers"
)

// RequireRoles menolak request yang role-nya tidak ada di daftar.
// Dipasang SETELAH AuthMiddleware (role diambil dari locals, bukan dari token lagi).
func RequireRoles(errMessage string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, errMessage)
		}
		return c.Next()
	}
}
