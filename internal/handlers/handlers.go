package handlers

import (
	"github.com/gofiber/fiber/v3"

	"healthshare/internal/models"
)

// currentUser returns the authenticated user placed by the auth middleware,
// or nil on public routes.
func currentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
