package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"paquexpress/internal/errors"
	"paquexpress/internal/geocode"
	"paquexpress/internal/model"
	"paquexpress/internal/repository"
	"paquexpress/internal/storage"
)

// FallbackAddress is stored when reverse geocoding fails for any reason.
const FallbackAddress = "address not available"

const maxAddressLen = 255

// DeliveryService handles delivery recording and history.
type DeliveryService interface {
	RecordDelivery(ctx context.Context, userID, packageID uint, lat, lon decimal.Decimal, photo io.Reader, photoName string) (*model.Delivery, error)
	ListDeliveriesForUser(ctx context.Context, userID uint) ([]model.Delivery, error)
}

type deliveryService struct {
	userRepo     repository.UserRepository
	packageRepo  repository.PackageRepository
	deliveryRepo repository.DeliveryRepository
	photoStore   storage.PhotoStore
	geocoder     geocode.Geocoder
}

// NewDeliveryService creates a new delivery service.
func NewDeliveryService(
	userRepo repository.UserRepository,
	packageRepo repository.PackageRepository,
	deliveryRepo repository.DeliveryRepository,
	photoStore storage.PhotoStore,
	geocoder geocode.Geocoder,
) DeliveryService {
	return &deliveryService{
		userRepo:     userRepo,
		packageRepo:  packageRepo,
		deliveryRepo: deliveryRepo,
		photoStore:   photoStore,
		geocoder:     geocoder,
	}
}

// RecordDelivery persists the evidence photo, resolves the address
// best-effort, and commits the photo record, the delivery and the package
// status flip as one transaction. The recording user is not required to own
// the package, and a package may be delivered more than once; each submission
// creates its own Delivery and Photo.
func (s *deliveryService) RecordDelivery(ctx context.Context, userID, packageID uint, lat, lon decimal.Decimal, photo io.Reader, photoName string) (*model.Delivery, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPackageNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}

	// File write happens before the transaction; a later DB failure leaves
	// the file orphaned on disk.
	path, err := s.photoStore.Save(photoName, photo)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}

	address := FallbackAddress
	if resolved, err := s.geocoder.ReverseGeocode(ctx, lat, lon); err == nil {
		address = resolved
	}
	// Truncate by characters, not bytes; display names are routinely
	// non-ASCII and a byte slice could cut mid-rune.
	if r := []rune(address); len(r) > maxAddressLen {
		address = string(r[:maxAddressLen])
	}

	delivery := &model.Delivery{
		PackageID:   packageID,
		UserID:      userID,
		PhotoPath:   path,
		Latitude:    lat,
		Longitude:   lon,
		Address:     address,
		DeliveredAt: time.Now(),
	}
	evidence := &model.Photo{
		Description: fmt.Sprintf("evidence for package %s", pkg.TrackingCode),
		Path:        path,
		CapturedAt:  delivery.DeliveredAt,
	}

	if err := s.deliveryRepo.CreateWithEvidence(ctx, delivery, evidence); err != nil {
		return nil, fmt.Errorf("record delivery: %w", err)
	}

	return delivery, nil
}

// ListDeliveriesForUser returns the user's delivery history, newest first.
func (s *deliveryService) ListDeliveriesForUser(ctx context.Context, userID uint) ([]model.Delivery, error) {
	deliveries, err := s.deliveryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}
