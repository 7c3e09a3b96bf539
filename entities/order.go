package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusOk        = "ok"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"index" json:"user_id"`
	Date       time.Time  `json:"date"`
	Total      int        `json:"total"`
	Status     string     `json:"status"` // "ok" -> "cancelled", one-way
	Shown      bool       `json:"shown"`
	ShownAt    *time.Time `json:"shown_at,omitempty"`
	PickupCode string     `json:"pickup_code,omitempty"`
	Issued     bool       `json:"issued"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem is one order line, priced from the catalog at placement time.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID `gorm:"index" json:"order_id"`
	FoodID    uuid.UUID `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int       `json:"unit_price"`

	Timestamp
}
