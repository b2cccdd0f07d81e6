package memory

import (
	"context"
	"strings"
	"sync"

	"globemart-backend/internal/domain"
)

// ProductStore is an in-memory product store. It backs the "memory" store
// driver and doubles as the fake store for tests. Insertion order stands in
// for id-ascending ordering: ids are assigned sequentially on Add.
type ProductStore struct {
	mu           sync.RWMutex
	products     []domain.Product
	nextID       int64
	matchCountry bool
}

func NewProductStore(matchCountry bool) *ProductStore {
	return &ProductStore{
		nextID:       1,
		matchCountry: matchCountry,
	}
}

// Add assigns the next id and appends the product. Ids are never reused.
func (s *ProductStore) Add(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, p)
	return p
}

func (s *ProductStore) matches(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	if s.matchCountry && strings.Contains(strings.ToLower(p.Country), query) {
		return true
	}
	return false
}

func (s *ProductStore) SearchProducts(ctx context.Context, query string, limit, offset int) ([]domain.Product, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []domain.Product{}
	for _, p := range s.products {
		if s.matches(p, query) {
			matched = append(matched, p)
		}
	}

	return pageSlice(matched, limit, offset), int64(len(matched)), nil
}

func (s *ProductStore) SuggestNames(ctx context.Context, query string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suggestions := []string{}
	seen := map[string]bool{}
	for _, p := range s.products {
		if len(suggestions) >= limit {
			break
		}
		if !s.matches(p, query) {
			continue
		}
		name := strings.ToLower(p.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		suggestions = append(suggestions, name)
	}

	return suggestions, nil
}

func (s *ProductStore) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pageSlice(s.products, limit, offset), int64(len(s.products)), nil
}

func (s *ProductStore) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrNotFound
}

// pageSlice returns the [offset, offset+limit) window of products. An offset
// beyond the end yields an empty slice, not an error.
func pageSlice(products []domain.Product, limit, offset int) []domain.Product {
	if offset >= len(products) {
		return []domain.Product{}
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	page := make([]domain.Product, end-offset)
	copy(page, products[offset:end])
	return page
}
