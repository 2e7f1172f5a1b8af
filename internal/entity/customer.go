package entity

import "strings"

const CustomerRole = "customer"

// Customer represents a row of the profile table filtered to role=customer.
type Customer struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	FullName  string `db:"full_name"`
	City      string `db:"city"`
	Role      string `db:"role"`
}

// DisplayName returns the best available human name for the customer.
func (c *Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	if name := strings.TrimSpace(c.FirstName + " " + c.LastName); name != "" {
		return name
	}
	return c.Email
}

// StockLevel is the current on-hand quantity of a product.
type StockLevel struct {
	ProductID    int    `db:"product_id"`
	ProductName  string `db:"product_name"`
	Category     string `db:"category"`
	CurrentStock int    `db:"current_stock"`
}
