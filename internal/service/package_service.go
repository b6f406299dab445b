package service

import (
	"context"
	"fmt"

	"paquexpress/internal/model"
	"paquexpress/internal/repository"
)

// PackageService exposes package listing and demo provisioning.
type PackageService interface {
	ListPackages(ctx context.Context, userID uint) ([]model.Package, error)
	SeedDemoPackages(ctx context.Context, userID uint) ([]model.Package, error)
}

type packageService struct {
	packageRepo repository.PackageRepository
}

// NewPackageService creates a new package service.
func NewPackageService(packageRepo repository.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

// ListPackages returns all packages owned by the user. An unknown user id
// yields an empty list.
func (s *packageService) ListPackages(ctx context.Context, userID uint) ([]model.Package, error) {
	pkgs, err := s.packageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return pkgs, nil
}

// SeedDemoPackages inserts two hardcoded packages for the user. Not
// idempotent: repeated calls duplicate the tracking codes.
func (s *packageService) SeedDemoPackages(ctx context.Context, userID uint) ([]model.Package, error) {
	demo := []model.Package{
		{UserID: userID, TrackingCode: "PKG-001", Destination: "123 Main St, Downtown", Status: model.PackageStatusPending},
		{UserID: userID, TrackingCode: "PKG-002", Destination: "456 North Ave, Uptown", Status: model.PackageStatusPending},
	}
	if err := s.packageRepo.CreateBatch(ctx, demo); err != nil {
		return nil, fmt.Errorf("seed demo packages: %w", err)
	}
	return demo, nil
}
