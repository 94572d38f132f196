package location

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sayim-backend/internal/activity"
	"sayim-backend/internal/auth"
	"sayim-backend/internal/models"
)

type LocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activeOnly := c.QueryBool("active", false)
		locations, err := svc.List(activeOnly)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyonlar listelenemedi")
		}
		return c.JSON(locations)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, err := svc.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon okunamadı")
		}
		return c.JSON(loc)
	}
}

func CreateHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		// Yeni lokasyon aksi belirtilmedikçe aktif açılır.
		active := true
		if body.Active != nil {
			active = *body.Active
		}

		loc, err := svc.Add(body.Name, body.Description, active)
		if err != nil {
			// Boş isim ve isim çakışması da buradan döner.
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		claims := auth.Claims(c)
		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityLocation,
			EntityType:  "location",
			Description: fmt.Sprintf("Lokasyon eklendi: %s", loc.Name),
		})

		return c.Status(fiber.StatusCreated).JSON(loc)
	}
}

func UpdateHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LocationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		current, err := svc.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon okunamadı")
		}

		if body.Name != "" {
			current.Name = body.Name
		}
		current.Description = body.Description
		if body.Active != nil {
			current.Active = *body.Active
		}

		loc, err := svc.Update(current)
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateName):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon güncellenemedi")
		}

		claims := auth.Claims(c)
		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityLocation,
			EntityType:  "location",
			Description: fmt.Sprintf("Lokasyon güncellendi: %s", loc.Name),
		})

		return c.JSON(loc)
	}
}

func DeleteHandler(svc *Service, activities *activity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		loc, err := svc.Get(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon okunamadı")
		}

		if err := svc.Delete(id); err != nil {
			switch {
			case errors.Is(err, ErrInUse):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Lokasyon silinemedi")
		}

		claims := auth.Claims(c)
		activities.Write(activity.LogOptions{
			UserName:    claims.Name,
			Action:      models.ActivityLocation,
			EntityType:  "location",
			Description: fmt.Sprintf("Lokasyon silindi: %s", loc.Name),
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
