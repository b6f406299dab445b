package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery records a completed drop-off: who delivered which package, where,
// and the evidence photo taken at the spot. The user is the courier that
// recorded the delivery and is not required to be the package's owner.
type Delivery struct {
	ID          uint            `json:"delivery_id" gorm:"primaryKey"`
	PackageID   uint            `json:"package_id" gorm:"not null;index"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	PhotoPath   string          `json:"photo_path" gorm:"size:255;not null"`
	Latitude    decimal.Decimal `json:"latitude" gorm:"type:decimal(10,8);not null"`
	Longitude   decimal.Decimal `json:"longitude" gorm:"type:decimal(11,8);not null"`
	Address     string          `json:"address" gorm:"size:255"`
	DeliveredAt time.Time       `json:"delivered_at"`

	// Relations
	Package Package `json:"-" gorm:"foreignKey:PackageID"`
	User    User    `json:"-" gorm:"foreignKey:UserID"`
}
