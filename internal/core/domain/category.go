package domain

import "time"

// Category groups products under a URL-friendly name.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URLName   string    `json:"url_name"`
	Info      string    `json:"info"`
	ImgURL    string    `json:"img_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
