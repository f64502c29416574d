package storage

import (
	"database/sql"
	"fmt"

	"github.com/antoniopolonijr/sao-joao-frango-assado-server/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// CreateOrder inserts the order header and every normalized line inside one
// transaction. Any failure rolls everything back; no partial order survives.
func (r *PostgresRepository) CreateOrder(date, timeOfDay string, lines []domain.OrderLine) (int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var orderID int
	if err := tx.QueryRow(`
		INSERT INTO orders (order_date, order_time)
		VALUES ($1, $2)
		RETURNING id
	`, date, timeOfDay).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, line := range lines {
		if _, err := tx.Exec(`
			INSERT INTO order_details (order_id, food_id, size, quantity)
			VALUES ($1, $2, $3, $4)
		`, orderID, line.FoodID, line.Size, line.Quantity); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, order_date, order_time
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.Date, &order.Time)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderLines returns the joined, catalog-enriched rows for one order. Price
// is kept as the driver's string form; the assembler coerces it.
func (r *PostgresRepository) OrderLines(orderID int) ([]domain.OrderLineRow, error) {
	rows, err := r.DB.Query(`
		SELECT f.id, f.name, f.category, COALESCE(f.description, ''), od.quantity, fp.price, od.size
		FROM order_details od
		JOIN foods f ON od.food_id = f.id
		JOIN food_prices fp ON fp.food_id = od.food_id AND LOWER(fp.size) = LOWER(od.size)
		WHERE od.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLineRow
	for rows.Next() {
		var row domain.OrderLineRow
		if err := rows.Scan(&row.FoodID, &row.Name, &row.Category, &row.Description,
			&row.Quantity, &row.Price, &row.Size); err != nil {
			return nil, err
		}
		lines = append(lines, row)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) ListOrders(limit, offset int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_date, order_time
		FROM orders
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Date, &order.Time); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) ListFoods() ([]domain.Food, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, category, COALESCE(description, '')
		FROM foods
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.Food
	byID := map[int]int{}
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Category, &food.Description); err != nil {
			return nil, err
		}
		byID[food.ID] = len(foods)
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	priceRows, err := r.DB.Query(`
		SELECT food_id, size, price
		FROM food_prices
		ORDER BY food_id, price
	`)
	if err != nil {
		return nil, err
	}
	defer priceRows.Close()

	for priceRows.Next() {
		var price domain.Price
		if err := priceRows.Scan(&price.FoodID, &price.Size, &price.Amount); err != nil {
			return nil, err
		}
		if idx, ok := byID[price.FoodID]; ok {
			foods[idx].Prices = append(foods[idx].Prices, price)
		}
	}
	return foods, priceRows.Err()
}

func (r *PostgresRepository) GetFood(foodID int) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRow(`
		SELECT id, name, category, COALESCE(description, '')
		FROM foods WHERE id = $1
	`, foodID).Scan(&food.ID, &food.Name, &food.Category, &food.Description)
	if err == sql.ErrNoRows {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT food_id, size, price
		FROM food_prices
		WHERE food_id = $1
		ORDER BY price
	`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var price domain.Price
		if err := rows.Scan(&price.FoodID, &price.Size, &price.Amount); err != nil {
			return nil, err
		}
		food.Prices = append(food.Prices, price)
	}
	return &food, rows.Err()
}

func (r *PostgresRepository) CountFoods() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM foods`).Scan(&count)
	return count, err
}

// FoodAt returns the food at the given position in ascending id order. Used
// by the food-of-the-day rotation.
func (r *PostgresRepository) FoodAt(offset int) (*domain.Food, error) {
	var foodID int
	err := r.DB.QueryRow(`
		SELECT id FROM foods ORDER BY id LIMIT 1 OFFSET $1
	`, offset).Scan(&foodID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.GetFood(foodID)
}

func (r *PostgresRepository) InsertContact(msg *domain.ContactMessage) error {
	return r.DB.QueryRow(`
		INSERT INTO contacts (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, msg.Name, msg.Email, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS food_prices (
			food_id INTEGER NOT NULL REFERENCES foods(id),
			size TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			UNIQUE (food_id, size)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_date TEXT NOT NULL,
			order_time TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_details (
			order_id INTEGER NOT NULL REFERENCES orders(id),
			food_id INTEGER NOT NULL REFERENCES foods(id),
			size TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			UNIQUE (order_id, food_id, size)
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
