package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"sayim-backend/internal/config"
	"sayim-backend/internal/models"
)

const CtxClaimsKey = "claims"

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		token, err := jwt.ParseWithClaims(parts[1], &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

// Claims: middleware'in koyduğu claim'leri döndürür. Middleware'den
// geçmemiş bir route'ta çağrılırsa boş claim döner.
func Claims(c *fiber.Ctx) *JWTCustomClaims {
	if claims, ok := c.Locals(CtxClaimsKey).(*JWTCustomClaims); ok {
		return claims
	}
	return &JWTCustomClaims{}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		for _, r := range allowedRoles {
			if r == claims.Role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
	}
}

// CanAccessLocation: admin her lokasyona erişir; auditor ve client
// sadece atanmış lokasyonlarına.
func CanAccessLocation(claims *JWTCustomClaims, locationID string) bool {
	if claims.Role == models.RoleAdmin {
		return true
	}
	for _, id := range claims.AssignedLocations {
		if id == locationID {
			return true
		}
	}
	return false
}
