package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Identifier   string    `gorm:"uniqueIndex" json:"identifier"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "user", "admin", "manager", "kitchen"
	Credit       int       `json:"credit"`

	Timestamp
}
