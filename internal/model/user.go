package model

import "time"

// User represents a courier account in the system.
type User struct {
	ID           uint      `json:"user_id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name,omitempty" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Packages   []Package  `json:"packages,omitempty" gorm:"foreignKey:UserID"`
	Deliveries []Delivery `json:"deliveries,omitempty" gorm:"foreignKey:UserID"`
}
