package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sayim-backend/internal/config"
	"sayim-backend/internal/models"
	"sayim-backend/internal/storage"
)

type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	Role              string   `json:"role"`
	AssignedLocations []string `json:"assignedLocations"`
}

type UpdateUserRequest struct {
	Name              *string   `json:"name"`
	Password          *string   `json:"password"`
	Role              *string   `json:"role"`
	AssignedLocations *[]string `json:"assignedLocations"`
}

func userResponse(u models.User) fiber.Map {
	return fiber.Map{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"role":              u.Role,
		"assignedLocations": u.AssignedLocations,
	}
}

func validRole(role string) bool {
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleAuditor, models.RoleClient:
		return true
	}
	return false
}

// RegisterAdminHandler: ilk kurulum için tek seferlik admin kaydı.
// Sistemde zaten bir admin varsa reddedilir.
func RegisterAdminHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}
		for _, u := range users {
			if u.Role == models.RoleAdmin {
				return fiber.NewError(fiber.StatusForbidden, "Zaten bir admin var")
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		users = append(users, user)
		if err := store.SetUsers(users); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(userResponse(user))
	}
}

func LoginHandler(cfg *config.Config, store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}

		var user *models.User
		for i := range users {
			if users[i].Email == body.Email {
				user = &users[i]
				break
			}
		}
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  userResponse(*user),
		})
	}
}

func MeHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}
		for _, u := range users {
			if u.ID == claims.UserID {
				return c.JSON(userResponse(u))
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
}

// ----------------------------------------
// KULLANICI YÖNETİMİ (admin)
// ----------------------------------------

func ListUsersHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar listelenemedi")
		}

		res := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			res = append(res, userResponse(u))
		}
		return c.JSON(res)
	}
}

func CreateUserHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Rol admin, auditor veya client olmalı")
		}

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}
		for _, u := range users {
			if u.Email == body.Email {
				return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
			}
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

		user := models.User{
			ID:                uuid.NewString(),
			Name:              body.Name,
			Email:             body.Email,
			PasswordHash:      string(hash),
			Role:              models.UserRole(body.Role),
			AssignedLocations: body.AssignedLocations,
		}
		users = append(users, user)
		if err := store.SetUsers(users); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(userResponse(user))
	}
}

func UpdateUserHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}

		for i := range users {
			if users[i].ID != id {
				continue
			}

			if body.Name != nil {
				name := strings.TrimSpace(*body.Name)
				if name == "" {
					return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
				}
				users[i].Name = name
			}
			if body.Role != nil {
				if !validRole(*body.Role) {
					return fiber.NewError(fiber.StatusBadRequest, "Rol admin, auditor veya client olmalı")
				}
				users[i].Role = models.UserRole(*body.Role)
			}
			if body.AssignedLocations != nil {
				users[i].AssignedLocations = *body.AssignedLocations
			}
			if body.Password != nil && *body.Password != "" {
				hash, _ := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
				users[i].PasswordHash = string(hash)
			}

			if err := store.SetUsers(users); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı güncellenemedi")
			}
			return c.JSON(userResponse(users[i]))
		}

		return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
}

func DeleteUserHandler(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		claims := Claims(c)
		if claims.UserID == id {
			return fiber.NewError(fiber.StatusBadRequest, "Kendi hesabını silemezsin")
		}

		users, err := store.Users()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar okunamadı")
		}

		for i := range users {
			if users[i].ID == id {
				users = append(users[:i], users[i+1:]...)
				if err := store.SetUsers(users); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı silinemedi")
				}
				return c.SendStatus(fiber.StatusNoContent)
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
}
