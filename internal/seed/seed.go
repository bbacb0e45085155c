package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type customerSeed struct {
	Name    string
	Surname string
	Email   string
}

type categorySeed struct {
	Title       string
	Description string
}

type itemSeed struct {
	Title       string
	Description string
	Price       float64
	Category    string
}

type orderSeed struct {
	CustomerEmail string
	Items         map[string]int // item title -> quantity
}

// Apply inserts demo data for manual testing. It is a no-op when customers
// already exist, matching a fresh-database bootstrap.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	var existing int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&existing); err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if existing > 0 {
		return nil
	}

	customers := []customerSeed{
		{"John", "Doe", "john.doe@example.com"},
		{"Jane", "Smith", "jane.smith@example.com"},
		{"Bob", "Johnson", "bob.johnson@example.com"},
	}
	customerIDs := make(map[string]int64, len(customers))
	for _, c := range customers {
		var id int64
		if err := pool.QueryRow(ctx, `
INSERT INTO customers (name, surname, email)
VALUES ($1, $2, $3)
RETURNING id
`, c.Name, c.Surname, c.Email).Scan(&id); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.Email, err)
		}
		customerIDs[c.Email] = id
	}

	categories := []categorySeed{
		{"Electronics", "Electronic devices and gadgets"},
		{"Books", "Books of various genres"},
		{"Clothing", "Apparel and accessories"},
		{"Home & Garden", "Home improvement and garden items"},
	}
	categoryIDs := make(map[string]int64, len(categories))
	for _, cat := range categories {
		var id int64
		if err := pool.QueryRow(ctx, `
INSERT INTO shop_item_categories (title, description)
VALUES ($1, $2)
RETURNING id
`, cat.Title, cat.Description).Scan(&id); err != nil {
			return fmt.Errorf("insert category %s: %w", cat.Title, err)
		}
		categoryIDs[cat.Title] = id
	}

	items := []itemSeed{
		{"Smartphone", "Latest model smartphone", 599.99, "Electronics"},
		{"Laptop", "High-performance laptop", 1299.99, "Electronics"},
		{"Python Programming Book", "Learn Python programming", 39.99, "Books"},
		{"T-Shirt", "Comfortable cotton t-shirt", 19.99, "Clothing"},
		{"Garden Hose", "50ft garden hose", 29.99, "Home & Garden"},
	}
	itemIDs := make(map[string]int64, len(items))
	for _, it := range items {
		var id int64
		if err := pool.QueryRow(ctx, `
INSERT INTO shop_items (title, description, price)
VALUES ($1, $2, $3)
RETURNING id
`, it.Title, it.Description, it.Price).Scan(&id); err != nil {
			return fmt.Errorf("insert item %s: %w", it.Title, err)
		}
		itemIDs[it.Title] = id
		if _, err := pool.Exec(ctx, `
INSERT INTO shop_item_category_links (shop_item_id, category_id)
VALUES ($1, $2)
`, id, categoryIDs[it.Category]); err != nil {
			return fmt.Errorf("link item %s: %w", it.Title, err)
		}
	}

	orders := []orderSeed{
		{"john.doe@example.com", map[string]int{"Smartphone": 1, "Python Programming Book": 2}},
		{"jane.smith@example.com", map[string]int{"Laptop": 1, "T-Shirt": 3}},
	}
	for _, o := range orders {
		var orderID int64
		if err := pool.QueryRow(ctx, `
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING id
`, customerIDs[o.CustomerEmail]).Scan(&orderID); err != nil {
			return fmt.Errorf("insert order for %s: %w", o.CustomerEmail, err)
		}
		for title, qty := range o.Items {
			if _, err := pool.Exec(ctx, `
INSERT INTO order_items (order_id, shop_item_id, quantity)
VALUES ($1, $2, $3)
`, orderID, itemIDs[title], qty); err != nil {
				return fmt.Errorf("insert order item %s: %w", title, err)
			}
		}
	}

	return nil
}
