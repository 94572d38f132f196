package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sayim-backend/internal/activity"
	"sayim-backend/internal/auth"
	"sayim-backend/internal/inventory"
	"sayim-backend/internal/models"
)

type ScanRequest struct {
	Barcode  string `json:"barcode"`
	Location string `json:"location"`
}

type CountRequest struct {
	ItemID           string `json:"itemId"`
	Location         string `json:"location"`
	PhysicalQuantity int    `json:"physicalQuantity"`
}

// ScanHandler: barkod okutma. Her istek sayılan miktarı 1 artırır.
func ScanHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ScanRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Barcode = strings.TrimSpace(body.Barcode)
		if body.Barcode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Barkod zorunlu")
		}

		claims := auth.Claims(c)
		rec, err := svc.ScanIncrement(body.Barcode, strings.TrimSpace(body.Location), claims.Name)
		if err != nil {
			if errors.Is(err, inventory.ErrItemNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı: "+body.Barcode)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Okutma kaydedilemedi")
		}

		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityScan,
			EntityType:  "audited_item",
			Description: fmt.Sprintf("%s okutuldu (%s), sayılan: %d", rec.ItemID, rec.Location, rec.PhysicalQuantity),
		})

		return c.JSON(rec)
	}
}

// CountHandler: açık miktar girişi. Önceki sayımın üzerine yazar.
func CountHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.ItemID = strings.TrimSpace(body.ItemID)
		if body.ItemID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün kimliği zorunlu")
		}
		if body.PhysicalQuantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sayılan miktar negatif olamaz")
		}

		location := strings.TrimSpace(body.Location)
		if location == "" {
			location = inventory.DefaultLocation
		}

		claims := auth.Claims(c)
		key := models.ItemKey{ItemID: body.ItemID, Location: location}
		rec, err := svc.Upsert(key, body.PhysicalQuantity, claims.Name)
		if err != nil {
			if errors.Is(err, inventory.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün katalogda bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sayım kaydedilemedi")
		}

		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityCount,
			EntityType:  "audited_item",
			Description: fmt.Sprintf("%s sayıldı (%s): %d", rec.ItemID, rec.Location, rec.PhysicalQuantity),
		})

		return c.JSON(rec)
	}
}

func ListAuditedHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Items()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sayım kayıtları listelenemedi")
		}
		return c.JSON(items)
	}
}

func SummaryHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := svc.Summary()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		return c.JSON(summary)
	}
}

func SummaryByLocationHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc := strings.TrimSpace(c.Query("location"))
		if loc == "" {
			return fiber.NewError(fiber.StatusBadRequest, "location parametresi zorunlu")
		}

		summary, err := svc.SummaryByLocation(loc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		return c.JSON(summary)
	}
}
