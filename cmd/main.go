package main

import (
	"log"

	"github.com/SallesND3V/Doceiria-Mockup-Site/config"
	"github.com/SallesND3V/Doceiria-Mockup-Site/routes"
	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	auth := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	if err := auth.EnsureDefaultAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	settings := services.NewSettingsService(db)
	svcs := routes.Services{
		Auth:      auth,
		Catalog:   services.NewCatalogService(db),
		Settings:  settings,
		Instagram: services.NewInstagramService(db, settings),
		Seed:      services.NewSeedService(db),
	}

	r := routes.SetupRouter(cfg, svcs)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
