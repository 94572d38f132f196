package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort       string
	StorageBackend string // postgres | badger | memory
	DatabaseDSN    string
	BadgerPath     string // Badger backend'i için veri klasörü
	JWTSecret      string
	CORSOrigins    string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", "postgres"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=sayim port=5432 sslmode=disable"),
		BadgerPath:     getEnv("BADGER_PATH", "./sayim-data"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	switch cfg.StorageBackend {
	case "postgres", "badger", "memory":
	default:
		log.Fatalf("[FATAL] STORAGE_BACKEND geçersiz: %q (postgres, badger veya memory olmalı)", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=sayim port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
