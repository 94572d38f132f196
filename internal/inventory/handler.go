package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sayim-backend/internal/activity"
	"sayim-backend/internal/auth"
	"sayim-backend/internal/importer"
	"sayim-backend/internal/location"
	"sayim-backend/internal/models"
)

// İçe aktarma istekleri CSV metnini JSON gövdesinde taşır, dosya upload
// yerine panel metin kutusundan yapıştırılan içerik de aynı yoldan gelir.
type ImportRequest struct {
	CSV      string `json:"csv"`
	Location string `json:"location"`
}

func ImportItemMasterHandler(catalog *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ImportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if strings.TrimSpace(body.CSV) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "CSV içeriği boş")
		}

		records, err := importer.ParseString(body.CSV)
		if err != nil {
			if errors.Is(err, importer.ErrBadImport) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İçe aktarma başarısız")
		}

		count, err := catalog.ReplaceItemMaster(records)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün listesi kaydedilemedi")
		}

		claims := auth.Claims(c)
		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityImport,
			EntityType:  "item_master",
			Description: fmt.Sprintf("%d ürün içe aktarıldı", count),
		})

		return c.JSON(fiber.Map{"imported": count})
	}
}

func ImportClosingStockHandler(catalog *Service, locations *location.Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ImportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if strings.TrimSpace(body.CSV) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "CSV içeriği boş")
		}

		claims := auth.Claims(c)
		forced := strings.TrimSpace(body.Location)

		// Auditor sadece kendine atanmış lokasyonlar için stok yükleyebilir.
		// Tek lokasyon atanmışsa seçim istemeden o lokasyona zorlanır.
		if claims.Role != models.RoleAdmin {
			if forced == "" {
				if len(claims.AssignedLocations) != 1 {
					return fiber.NewError(fiber.StatusBadRequest, "Lokasyon seçimi zorunlu")
				}
				loc, err := locations.Get(claims.AssignedLocations[0])
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Atanmış lokasyon bulunamadı")
				}
				forced = loc.Name
			} else {
				loc, err := findLocationByName(locations, forced)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Bilinmeyen lokasyon: "+forced)
				}
				if !auth.CanAccessLocation(claims, loc.ID) {
					return fiber.NewError(fiber.StatusForbidden, "Bu lokasyona erişim yetkin yok")
				}
			}
		}

		records, err := importer.ParseString(body.CSV)
		if err != nil {
			if errors.Is(err, importer.ErrBadImport) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İçe aktarma başarısız")
		}

		updated, added, err := catalog.MergeClosingStock(records, forced)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kapanış stoğu kaydedilemedi")
		}

		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityImport,
			EntityType:  "closing_stock",
			Description: fmt.Sprintf("%d kayıt güncellendi, %d kayıt eklendi", updated, added),
		})

		return c.JSON(fiber.Map{"updated": updated, "added": added})
	}
}

func ListItemsHandler(catalog *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := catalog.Items()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}
		return c.JSON(items)
	}
}

func SearchItemsHandler(catalog *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		items, err := catalog.Search(q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Arama başarısız")
		}
		return c.JSON(items)
	}
}

// ClearDataHandler: sayım verilerini sıfırlar. Lokasyonlar, kullanıcılar
// ve soru seti korunur.
func ClearDataHandler(catalog *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := catalog.ClearAll(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veriler temizlenemedi")
		}

		claims := auth.Claims(c)
		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityReset,
			EntityType:  "inventory",
			Description: "Sayım verileri sıfırlandı",
		})

		return c.JSON(fiber.Map{"message": "Sayım verileri temizlendi"})
	}
}

func findLocationByName(locations *location.Service, name string) (models.Location, error) {
	all, err := locations.List(false)
	if err != nil {
		return models.Location{}, err
	}
	for _, loc := range all {
		if strings.EqualFold(loc.Name, name) {
			return loc, nil
		}
	}
	return models.Location{}, location.ErrNotFound
}
