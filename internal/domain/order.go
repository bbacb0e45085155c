package domain

// Order is a consistency unit: the order row plus its owned OrderItem children.
// OrderItem rows never exist without a parent order and are deleted with it.
type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customer_id"`
	Customer   Customer    `json:"customer"`
	Items      []OrderItem `json:"items"`
}

// OrderItem ties an order to a shop item with a quantity.
type OrderItem struct {
	ID         int64    `json:"id"`
	ShopItemID int64    `json:"shop_item_id"`
	Quantity   int      `json:"quantity"`
	ShopItem   ShopItem `json:"shop_item"`
}
