package domain

// Drink is a beverage entry on the menu.
type Drink struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	ML    string  `json:"ml"`
	Price float64 `json:"price"`
}
