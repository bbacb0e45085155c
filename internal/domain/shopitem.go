package domain

// ShopItem is a purchasable catalog entry. Categories is a set: no duplicates,
// order irrelevant.
type ShopItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Categories  []Category `json:"categories"`
}
