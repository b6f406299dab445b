package repository

import (
	"context"

	"gorm.io/gorm"

	"paquexpress/internal/model"
)

// DeliveryRepository defines delivery persistence operations.
type DeliveryRepository interface {
	// CreateWithEvidence commits the evidence photo, the delivery record and
	// the package status flip as a single transaction.
	CreateWithEvidence(ctx context.Context, delivery *model.Delivery, photo *model.Photo) error
	ListByUser(ctx context.Context, userID uint) ([]model.Delivery, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository builds a GORM-backed repository.
func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) CreateWithEvidence(ctx context.Context, delivery *model.Delivery, photo *model.Photo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(photo).Error; err != nil {
			return err
		}
		if err := tx.Create(delivery).Error; err != nil {
			return err
		}
		return tx.Model(&model.Package{}).
			Where("id = ?", delivery.PackageID).
			Update("status", model.PackageStatusDelivered).Error
	})
}

// ListByUser returns the user's deliveries, most recent first.
func (r *deliveryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Delivery, error) {
	var deliveries []model.Delivery
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("delivered_at DESC").
		Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}
