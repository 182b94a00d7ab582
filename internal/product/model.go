package product

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	VolumeML      int       `json:"volume_ml"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      *string   `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type Page struct {
	Products      []*Product `json:"products"`
	CurrentPage   int        `json:"currentPage"`
	TotalPages    int        `json:"totalPages"`
	TotalProducts int64      `json:"totalProducts"`
	Limit         int        `json:"limit"`
	HasNextPage   bool       `json:"hasNextPage"`
	HasPrevPage   bool       `json:"hasPrevPage"`
}

const (
	DefaultLimit = 50
	MaxLimit     = 100
)
