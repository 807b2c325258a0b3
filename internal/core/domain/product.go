package domain

import "time"

// Product is a menu item owned by the user that created it.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Info        string    `json:"info"`
	Price       float64   `json:"price"`
	CategoryURL string    `json:"category_url"`
	ImgURL      string    `json:"img_url"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
