package storage

import (
	"database/sql"
	"fmt"

	"minima-order/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	r := &PostgresRepository{DB: db}
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			table_number INTEGER NOT NULL,
			people INTEGER NOT NULL,
			total INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			receipt_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			item_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS receipts (
			order_ref TEXT PRIMARY KEY,
			table_number INTEGER NOT NULL,
			pdf BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// CreateOrder persists the order and its lines in one transaction. The
// creation timestamp is assigned by the database and scanned back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (id, table_number, people, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		order.ID, order.TableNumber, order.People, order.Total, order.Status).
		Scan(&order.CreatedAt); err != nil {
		return err
	}

	for _, line := range order.Cart {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID, line.ID, line.Name, line.Price, line.Quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, table_number, people, total, status, receipt_url, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.TableNumber, &order.People, &order.Total, &order.Status, &order.ReceiptURL, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Cart = []domain.CartLine{}
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ID, &line.Name, &line.Price, &line.Quantity); err != nil {
			continue
		}
		order.Cart = append(order.Cart, line)
	}
	return &order, nil
}

// ListOrdersByTable fetches every order for a table. No ORDER BY on orders:
// fetch order is undefined and the service sorts for display.
func (r *PostgresRepository) ListOrdersByTable(tableNumber int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, table_number, people, total, status, receipt_url, created_at
		FROM orders
		WHERE table_number = $1`, tableNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := make(map[string]int)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.TableNumber, &order.People, &order.Total, &order.Status, &order.ReceiptURL, &order.CreatedAt); err != nil {
			continue
		}
		order.Cart = []domain.CartLine{}
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}

	itemRows, err := r.DB.Query(`
		SELECT oi.order_id, oi.item_id, oi.name, oi.price, oi.quantity
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.table_number = $1
		ORDER BY oi.id`, tableNumber)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var line domain.CartLine
		if err := itemRows.Scan(&orderID, &line.ID, &line.Name, &line.Price, &line.Quantity); err != nil {
			continue
		}
		if pos, ok := index[orderID]; ok {
			orders[pos].Cart = append(orders[pos].Cart, line)
		}
	}

	return orders, nil
}

// AttachReceiptURL is the only mutation an order sees after creation.
func (r *PostgresRepository) AttachReceiptURL(orderID, url string) error {
	_, err := r.DB.Exec("UPDATE orders SET receipt_url = $1 WHERE id = $2", url, orderID)
	return err
}

func (r *PostgresRepository) SaveReceipt(orderRef string, tableNumber int, pdf []byte) error {
	_, err := r.DB.Exec(`
		INSERT INTO receipts (order_ref, table_number, pdf)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_ref) DO UPDATE SET pdf = EXCLUDED.pdf`,
		orderRef, tableNumber, pdf)
	return err
}

func (r *PostgresRepository) GetReceipt(tableNumber int) ([]byte, error) {
	var pdf []byte
	err := r.DB.QueryRow(`
		SELECT pdf FROM receipts
		WHERE table_number = $1
		ORDER BY created_at DESC
		LIMIT 1`, tableNumber).Scan(&pdf)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
