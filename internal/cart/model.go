package cart

import "time"

type Item struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	VolumeML    int       `json:"volume_ml"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
