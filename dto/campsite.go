package dto

import (
	"encoding/json"
	"time"
)

type CreateCampsiteRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Price       int             `json:"price" binding:"required"`
	Capacity    int             `json:"capacity"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Amenities   []string        `json:"amenities"`
}

type UpdateCampsiteRequest struct {
	ID          uint            `json:"id" binding:"required"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Price       int             `json:"price"`
	Capacity    int             `json:"capacity"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Amenities   []string        `json:"amenities"`
}

type ChangeCampsiteStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

type CampsiteResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Price       int             `json:"price"`
	Capacity    int             `json:"capacity"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
	Amenities   []string        `json:"amenities"`
	Status      int             `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SearchFilters là bộ lọc tìm kiếm chỗ cắm trại
type SearchFilters struct {
	Name     string `json:"name"`
	PriceMin *int   `json:"priceMin"`
	PriceMax *int   `json:"priceMax"`
	Capacity *int   `json:"capacity"`
	Status   *int   `json:"status"`
}
