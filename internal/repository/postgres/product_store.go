package postgres

import (
	"context"
	"errors"
	"fmt"

	"globemart-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = "id, name, price, original_price, image, country, flag, rating, reviews, shipping, category"

type productStore struct {
	db           *pgxpool.Pool
	matchCountry bool
}

// NewProductStore creates a PostgreSQL-backed product store. matchCountry
// widens substring matching to the country column.
func NewProductStore(db *pgxpool.Pool, matchCountry bool) domain.ProductStore {
	return &productStore{
		db:           db,
		matchCountry: matchCountry,
	}
}

func (s *productStore) matchClause() string {
	clause := "LOWER(name) LIKE $1 OR LOWER(category) LIKE $1"
	if s.matchCountry {
		clause += " OR LOWER(country) LIKE $1"
	}
	return clause
}

// SearchProducts runs the count-then-fetch pair. The two queries are not one
// transaction: under concurrent writes the total is best-effort, which is
// acceptable for a catalog search.
func (s *productStore) SearchProducts(ctx context.Context, query string, limit, offset int) ([]domain.Product, int64, error) {
	pattern := "%" + query + "%"

	var total int64
	countSQL := "SELECT COUNT(*) FROM products WHERE " + s.matchClause()
	if err := s.db.QueryRow(ctx, countSQL, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	if total == 0 {
		return []domain.Product{}, 0, nil
	}

	dataSQL := "SELECT " + productColumns + " FROM products WHERE " + s.matchClause() +
		" ORDER BY id LIMIT $2 OFFSET $3"
	rows, err := s.db.Query(ctx, dataSQL, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *productStore) SuggestNames(ctx context.Context, query string, limit int) ([]string, error) {
	pattern := "%" + query + "%"

	sql := "SELECT DISTINCT LOWER(name) FROM products WHERE " + s.matchClause() +
		" ORDER BY LOWER(name) LIMIT $2"
	rows, err := s.db.Query(ctx, sql, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("suggest names: %w", err)
	}
	defer rows.Close()

	suggestions := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		suggestions = append(suggestions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (s *productStore) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	if total == 0 {
		return []domain.Product{}, 0, nil
	}

	rows, err := s.db.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *productStore) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := s.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Image,
		&p.Country, &p.Flag, &p.Rating, &p.Reviews, &p.Shipping, &p.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Image,
			&p.Country, &p.Flag, &p.Rating, &p.Reviews, &p.Shipping, &p.Category)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
