package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mitienda/pos-terminal/internal/auth"
	"github.com/mitienda/pos-terminal/internal/money"
	"github.com/mitienda/pos-terminal/internal/shop"
)

// Store is the postgres persistence gateway. Each call acquires a connection
// from the pool and releases it on every exit path, so no connection is ever
// held across interactive operations.
type Store struct {
	Pool     *pgxpool.Pool
	Logger   zerolog.Logger
	Currency string
}

// New builds a Store over the given pool. Monetary columns are tagged with
// currency when read back.
func New(pool *pgxpool.Pool, logger zerolog.Logger, currency string) *Store {
	return &Store{Pool: pool, Logger: logger, Currency: currency}
}

// GetEmployee reads the employee row with the given id. Absent rows map to
// auth.ErrUnknownEmployee.
func (s *Store) GetEmployee(ctx context.Context, id int) (auth.Employee, error) {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return auth.Employee{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	const query = `SELECT id, name, password_hash FROM employee WHERE id = $1`
	var emp auth.Employee
	err = conn.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.Name, &emp.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.Employee{}, auth.ErrUnknownEmployee
	}
	if err != nil {
		return auth.Employee{}, fmt.Errorf("query employee %d: %w", id, err)
	}
	return emp, nil
}

// GetInventory reads the persisted inventory in id order. The public price is
// read back as stored, so markdowns survive restarts.
func (s *Store) GetInventory(ctx context.Context) ([]*shop.Product, error) {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	const query = `
		SELECT id, name, wholesale_price, public_price, available, stock
		FROM inventory
		ORDER BY id`
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var products []*shop.Product
	for rows.Next() {
		var (
			p                 shop.Product
			wholesale, public float64
		)
		if err := rows.Scan(&p.ID, &p.Name, &wholesale, &public, &p.Available, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		p.WholesalePrice = money.New(wholesale, s.Currency)
		p.PublicPrice = money.New(public, s.Currency)
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	return products, nil
}

// WriteInventory appends a snapshot of every product to the historical
// inventory table in one batch.
func (s *Store) WriteInventory(ctx context.Context, products []*shop.Product) error {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	const query = `
		INSERT INTO historical_inventory (product_id, name, wholesale_price, available, stock)
		VALUES ($1, $2, $3, $4, $5)`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query, p.ID, p.Name, p.WholesalePrice.Amount, p.Available, p.Stock)
	}
	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("write historical inventory: %w", err)
	}
	s.Logger.Info().Int("products", len(products)).Msg("historical inventory written")
	return nil
}

// AddProduct inserts a newly created product.
func (s *Store) AddProduct(ctx context.Context, product shop.Product) error {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	const query = `
		INSERT INTO inventory (id, name, wholesale_price, public_price, available, stock)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = conn.Exec(ctx, query,
		product.ID, product.Name,
		product.WholesalePrice.Amount, product.PublicPrice.Amount,
		product.Available, product.Stock,
	)
	if err != nil {
		return fmt.Errorf("insert product %d: %w", product.ID, err)
	}
	return nil
}

// UpdateProduct persists the mutable fields of an existing product: stock,
// availability and the current public price.
func (s *Store) UpdateProduct(ctx context.Context, product shop.Product) error {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	const query = `UPDATE inventory SET stock = $1, available = $2, public_price = $3 WHERE id = $4`
	_, err = conn.Exec(ctx, query, product.Stock, product.Available, product.PublicPrice.Amount, product.ID)
	if err != nil {
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}
	return nil
}

// DeleteProduct removes the product row with the given id.
func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}
