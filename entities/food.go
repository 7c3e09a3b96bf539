package entities

import (
	"github.com/google/uuid"
)

type Food struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Price    int       `json:"price"`
	ImageURL string    `json:"image_url,omitempty"`

	Timestamp
}
