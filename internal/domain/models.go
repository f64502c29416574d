package domain

import "time"

type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Prices      []Price `json:"prices,omitempty"`
}

type Price struct {
	FoodID int     `json:"food_id"`
	Size   string  `json:"size"`
	Amount float64 `json:"price"`
}

type Order struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// OrderLine is one persisted row of an order: a (food, size) variant with
// its merged quantity.
type OrderLine struct {
	FoodID   int    `json:"food_id"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// CartSelection is a single pick from the storefront; quantity is implicit,
// one per occurrence.
type CartSelection struct {
	Food CartFood `json:"food"`
	Size string   `json:"size"`
}

type CartFood struct {
	ID int `json:"id"`
}

// OrderItemView is a priced, display-ready order line produced by the
// assembler from the storage join.
type OrderItemView struct {
	FoodTypeID  int     `json:"foodTypeId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}

// OrderView merges the computed total into the header for read responses
// without touching the stored header fields.
type OrderView struct {
	Order
	Total float64 `json:"total"`
}

// OrderLineRow is the raw shape coming back from the order-details join;
// Price stays a string until the assembler coerces it.
type OrderLineRow struct {
	FoodID      int
	Name        string
	Category    string
	Description string
	Quantity    int
	Price       string
	Size        string
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderEvent is published to Kafka after an order commits.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	Lines     int       `json:"lines"`
	Timestamp time.Time `json:"timestamp"`
}
