// Package store loads sales snapshots from Postgres. It is the
// realized form of the external data provider: the engine only ever
// sees the immutable snapshot this package returns, never the
// database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type Store struct {
	db *sql.DB
}

// New opens a read-only connection pool against the given DSN.
func New(connStr string) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectSaleColumns = `
	s.id, s.date, s.product_id, COALESCE(p.name, ''), COALESCE(p.category, ''),
	s.customer_id, COALESCE(c.name, ''), s.quantity, s.unit_price, s.total, s.status
`

func scanSale(sc scanner) (sale.Sale, error) {
	var v sale.Sale

	var status string

	if err := sc.Scan(
		&v.ID, &v.Date, &v.ProductID, &v.ProductName, &v.Category,
		&v.CustomerID, &v.CustomerName, &v.Quantity, &v.UnitPrice, &v.Total, &status,
	); err != nil {
		return sale.Sale{}, err
	}

	v.Status = sale.Status(status)

	return v, nil
}

// Snapshot reads the full transaction log and reference tables in one
// pass. Sales come back date-descending, matching the panel's default
// view.
func (s *Store) Snapshot(ctx context.Context) (*sale.Snapshot, error) {
	snap := &sale.Snapshot{}

	query := `SELECT ` + selectSaleColumns + `
		FROM sales s
		LEFT JOIN products p ON s.product_id = p.id
		LEFT JOIN customers c ON s.customer_id = c.id
		ORDER BY s.date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		snap.Sales = append(snap.Sales, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	if snap.Products, err = s.products(ctx); err != nil {
		return nil, err
	}

	if snap.Customers, err = s.customers(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *Store) products(ctx context.Context) ([]sale.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var out []sale.Product

	for rows.Next() {
		var p sale.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *Store) customers(ctx context.Context) ([]sale.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, city FROM customers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var out []sale.Customer

	for rows.Next() {
		var c sale.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.City); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		out = append(out, c)
	}

	return out, rows.Err()
}
