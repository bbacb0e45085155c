package domain

// Customer is a registered shop customer. Email is unique across all customers.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}
