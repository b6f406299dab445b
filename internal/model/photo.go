package model

import "time"

// Photo is an audit record for an uploaded evidence image. It is written
// alongside each Delivery but intentionally carries no foreign key to it.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Path        string    `json:"path" gorm:"size:255;not null"`
	CapturedAt  time.Time `json:"captured_at"`
}
