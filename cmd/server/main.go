package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	_ "paquexpress/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"paquexpress/internal/cache"
	"paquexpress/internal/config"
	"paquexpress/internal/db"
	"paquexpress/internal/geocode"
	"paquexpress/internal/handler"
	"paquexpress/internal/model"
	"paquexpress/internal/repository"
	"paquexpress/internal/router"
	"paquexpress/internal/service"
	"paquexpress/internal/storage"
)

// @title Paquexpress API
// @version 1.0
// @description Package-delivery tracking API: couriers register, list their
// @description assigned packages, and record deliveries with a geotagged
// @description evidence photo.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Delivery{},
			&model.Photo{},
			&model.Package{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Package{},
		&model.Delivery{},
		&model.Photo{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	photoStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("photo store init: %v", err)
	}

	geocoder := geocode.NewNominatimClient(cfg.GeocodeBaseURL, cfg.GeocodeTimeout, cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	deliveryRepo := repository.NewDeliveryRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	packageService := service.NewPackageService(packageRepo)
	deliveryService := service.NewDeliveryService(userRepo, packageRepo, deliveryRepo, photoStore, geocoder)

	// Seed the default account once, guarded by a lookup-or-create check.
	if err := authService.EnsureDefaultUser(context.Background()); err != nil {
		log.Fatalf("default user init: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	packageHandler := handler.NewPackageHandler(packageService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		packageHandler,
		deliveryHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
