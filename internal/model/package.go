package model

import "time"

// PackageStatus represents the delivery status of a package.
type PackageStatus string

const (
	PackageStatusPending   PackageStatus = "pending"
	PackageStatusDelivered PackageStatus = "delivered"
)

// Package represents a parcel assigned to a courier for delivery.
// Tracking codes are human-readable identifiers and are not enforced unique.
type Package struct {
	ID           uint          `json:"package_id" gorm:"primaryKey"`
	UserID       uint          `json:"user_id" gorm:"not null;index"`
	TrackingCode string        `json:"tracking_code" gorm:"size:50;not null"`
	Destination  string        `json:"destination" gorm:"size:255;not null"`
	Status       PackageStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt    time.Time     `json:"created_at"`

	// Relations
	User       User       `json:"-" gorm:"foreignKey:UserID"`
	Deliveries []Delivery `json:"-" gorm:"foreignKey:PackageID"`
}
