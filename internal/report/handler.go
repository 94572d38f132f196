package report

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func ReconciliationHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.ReconciliationCSV(c.Query("location"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}
		return sendCSV(c, "mutabakat", data)
	}
}

func DiscrepancyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := svc.DiscrepancyCSV(c.Query("location"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}
		return sendCSV(c, "farklar", data)
	}
}

func sendCSV(c *fiber.Ctx, name string, data []byte) error {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
