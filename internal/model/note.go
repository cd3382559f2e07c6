package model

import "time"

// Note is a free-text annotation on a contract. Tags are either supplied by
// the caller or auto-extracted from the content; insertion order is kept.
type Note struct {
	ID         uint     `gorm:"primaryKey;autoIncrement"`
	ContractID string   `gorm:"size:16;not null;index"`
	Content    string   `gorm:"type:text;not null"`
	Tags       []string `gorm:"serializer:json"`
	CreatedAt  time.Time
}
