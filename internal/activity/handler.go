package activity

import (
	"github.com/gofiber/fiber/v2"
)

func RecentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 0)
		entries, err := svc.Recent(limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aktivite kayıtları okunamadı")
		}
		return c.JSON(entries)
	}
}
