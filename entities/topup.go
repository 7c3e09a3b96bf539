package entities

import (
	"github.com/google/uuid"
)

type Topup struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Amount int       `json:"amount"`
	Done   bool      `json:"done"` // false -> true, one-way; credits the user exactly once

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
