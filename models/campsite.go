package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Campsite struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Price       int             `json:"price"` // Giá mỗi đêm
	Capacity    int             `json:"capacity"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	Amenities   pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Status      int             `json:"status" gorm:"default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings    []Booking       `json:"-" gorm:"foreignKey:CampsiteID"`
}

func (s *Campsite) ValidateStatus() error {
	if s.Status < 0 || s.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", s.Status)
	}
	return nil
}
