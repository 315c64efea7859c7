package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

// Config carries everything the process needs. It is built once in main and
// handed to the services explicitly; there are no package-level singletons.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port string

	JWTSecret string
	JWTTTL    time.Duration

	// CORSOrigins are allowed as-is; CORSOriginSuffix additionally allows any
	// https origin whose host ends with the suffix (preview deployments).
	CORSOrigins      []string
	CORSOriginSuffix string

	// Bootstrap admin seeded at startup when no account with that email
	// exists. Dev convenience only: rotate or override these in production.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	ttlHours, err := strconv.Atoi(getenv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "paula_veiga_doces"),

		Port: getenv("PORT", "8080"),

		JWTSecret: getenv("JWT_SECRET", "paula-veiga-secret-key-2024"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,

		CORSOrigins: strings.Split(
			getenv("CORS_ORIGINS", "https://doceiria-mockup-site.vercel.app,http://localhost:3000"), ","),
		CORSOriginSuffix: getenv("CORS_ORIGIN_SUFFIX", ".vercel.app"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@paulaveiga.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "senha123"),
		AdminName:     getenv("ADMIN_NAME", "Paula Veiga"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Category{},
		&models.Cake{},
		&models.Testimonial{},
		&models.SiteSettings{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}
