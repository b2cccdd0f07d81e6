package domain

import "context"

type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"` // must be >= Price when set
	Image         string   `json:"image"`                   // asset key, resolved against the asset origin
	ImageURL      string   `json:"imageUrl,omitempty"`
	Country       string   `json:"country"`
	Flag          string   `json:"flag"`
	Rating        float64  `json:"rating"` // 0-5
	Reviews       int      `json:"reviews"`
	Shipping      string   `json:"shipping"`
	Category      string   `json:"category"`
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// ProductStore is the persistence boundary for catalog records.
// Query strings are expected to be normalized (lower-cased, trimmed) by the caller.
type ProductStore interface {
	// SearchProducts returns the [offset, offset+limit) slice of all products
	// whose name or category (or country, if enabled) contains query, ordered
	// by id ascending, plus the total match count before pagination.
	SearchProducts(ctx context.Context, query string, limit, offset int) ([]Product, int64, error)

	// SuggestNames returns up to limit distinct lower-cased product names
	// matching query.
	SuggestNames(ctx context.Context, query string, limit int) ([]string, error)

	ListProducts(ctx context.Context, limit, offset int) ([]Product, int64, error)
	GetProductByID(ctx context.Context, id int64) (*Product, error)
}

type CatalogUsecase interface {
	ListProducts(ctx context.Context, limit, offset int) (ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}
