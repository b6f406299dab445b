package main

import (
	"context"
	"log"

	"paquexpress/internal/config"
	"paquexpress/internal/db"
	"paquexpress/internal/model"
	"paquexpress/internal/repository"
	"paquexpress/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Package{},
		&model.Delivery{},
		&model.Photo{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	authService := service.NewAuthService(userRepo)
	packageService := service.NewPackageService(packageRepo)

	ctx := context.Background()

	// Ensure the default account exists
	if err := authService.EnsureDefaultUser(ctx); err != nil {
		log.Fatalf("Failed to ensure default user: %v", err)
	}

	admin, err := userRepo.FindByUsername(ctx, "admin")
	if err != nil {
		log.Fatalf("Failed to look up default user: %v", err)
	}
	log.Printf("Default user ready (id=%d)", admin.ID)

	// Seed demo packages for the default user
	pkgs, err := packageService.SeedDemoPackages(ctx, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed demo packages: %v", err)
	}

	log.Printf("Seed completed successfully!")
	for _, pkg := range pkgs {
		log.Printf("  - Package %s -> %s (%s)", pkg.TrackingCode, pkg.Destination, pkg.Status)
	}
}
