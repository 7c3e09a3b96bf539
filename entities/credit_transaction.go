package entities

import (
	"github.com/google/uuid"
)

// CreditTransaction is an audit row written inside the same database
// transaction as the balance mutation it records.
type CreditTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	Amount      int       `json:"amount"` // negative for debits
	Type        string    `json:"type"`   // "Order", "Refund", "Topup"
	Description string    `json:"description"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
