package entities

import (
	"time"

	"github.com/google/uuid"
)

// MenuEntry ties a food to a calendar day with a stock ceiling.
// Invariant after every committed transaction: 0 <= Ordered <= MaxCount.
type MenuEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date     time.Time `gorm:"index" json:"date"`
	FoodID   uuid.UUID `gorm:"index" json:"food_id"`
	MaxCount int       `json:"max_count"`
	Ordered  int       `json:"ordered"`

	Food *Food `gorm:"foreignKey:FoodID"`
	Timestamp
}
