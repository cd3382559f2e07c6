package model

import "time"

// AuthCredential holds the single PIN hash protecting the app.
type AuthCredential struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	PINHash   string `gorm:"column:pin_hash;not null"`
	CreatedAt time.Time
}
