package repository

import (
	"context"

	"gorm.io/gorm"

	"paquexpress/internal/model"
)

// PackageRepository defines package persistence operations. Status updates
// happen inside the delivery transaction, not here.
type PackageRepository interface {
	CreateBatch(ctx context.Context, pkgs []model.Package) error
	FindByID(ctx context.Context, id uint) (*model.Package, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository builds a GORM-backed repository.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) CreateBatch(ctx context.Context, pkgs []model.Package) error {
	return r.db.WithContext(ctx).Create(&pkgs).Error
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	var pkg model.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListByUser returns all packages owned by the user in natural storage order.
// An unknown user id yields an empty slice, not an error.
func (r *packageRepository) ListByUser(ctx context.Context, userID uint) ([]model.Package, error) {
	var pkgs []model.Package
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}
