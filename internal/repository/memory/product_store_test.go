package memory_test

import (
	"context"
	"testing"

	"globemart-backend/internal/domain"
	"globemart-backend/internal/repository/memory"
)

func seedStore(t *testing.T, matchCountry bool) *memory.ProductStore {
	t.Helper()

	store := memory.NewProductStore(matchCountry)
	for _, p := range []domain.Product{
		{Name: "MacBook Pro", Category: "Electronics", Country: "USA"},
		{Name: "Lamp Shade", Category: "Home & Garden", Country: "Italy"},
		{Name: "Laser Printer", Category: "Electronics", Country: "Japan"},
		{Name: "Laptop Stand", Category: "Electronics", Country: "Germany"},
	} {
		store.Add(p)
	}
	return store
}

func TestSearchProductsMatching(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantIDs   []int64
		wantTotal int64
	}{
		{name: "empty query matches everything", query: "", wantIDs: []int64{1, 2, 3, 4}, wantTotal: 4},
		{name: "name substring", query: "mac", wantIDs: []int64{1}, wantTotal: 1},
		{name: "category substring", query: "electronics", wantIDs: []int64{1, 3, 4}, wantTotal: 3},
		{name: "substring not prefix", query: "book", wantIDs: []int64{1}, wantTotal: 1},
		{name: "no match on lap against macbook", query: "lap", wantIDs: []int64{4}, wantTotal: 1},
		{name: "no match at all", query: "zzz", wantIDs: []int64{}, wantTotal: 0},
	}

	store := seedStore(t, false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, total, err := store.SearchProducts(context.Background(), tt.query, 12, 0)
			if err != nil {
				t.Fatalf("SearchProducts: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(results) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if results[i].ID != id {
					t.Errorf("results[%d].ID = %d, want %d", i, results[i].ID, id)
				}
			}
		})
	}
}

func TestSearchProductsCountryPolicy(t *testing.T) {
	ctx := context.Background()

	withoutCountry := seedStore(t, false)
	if _, total, _ := withoutCountry.SearchProducts(ctx, "japan", 12, 0); total != 0 {
		t.Errorf("country matching disabled: total = %d, want 0", total)
	}

	withCountry := seedStore(t, true)
	if _, total, _ := withCountry.SearchProducts(ctx, "japan", 12, 0); total != 1 {
		t.Errorf("country matching enabled: total = %d, want 1", total)
	}
}

func TestSearchProductsPagination(t *testing.T) {
	store := seedStore(t, false)
	ctx := context.Background()

	results, total, err := store.SearchProducts(ctx, "", 2, 2)
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(results) != 2 || results[0].ID != 3 || results[1].ID != 4 {
		t.Errorf("unexpected page: %+v", results)
	}

	// Offset beyond total yields an empty page, not an error, total unchanged.
	results, total, err = store.SearchProducts(ctx, "", 2, 100)
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results beyond end, want 0", len(results))
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestSuggestNames(t *testing.T) {
	store := memory.NewProductStore(false)
	for i := 0; i < 15; i++ {
		store.Add(domain.Product{Name: "Laptop Stand", Category: "Electronics"})
	}
	store.Add(domain.Product{Name: "MacBook Pro", Category: "Electronics"})
	store.Add(domain.Product{Name: "Lamp Shade", Category: "Home & Garden"})

	suggestions, err := store.SuggestNames(context.Background(), "la", 10)
	if err != nil {
		t.Fatalf("SuggestNames: %v", err)
	}

	// Duplicate names collapse; output is lower-cased.
	want := []string{"laptop stand", "lamp shade"}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions %v, want %d", len(suggestions), suggestions, len(want))
	}
	for i := range want {
		if suggestions[i] != want[i] {
			t.Errorf("suggestions[%d] = %q, want %q", i, suggestions[i], want[i])
		}
	}
}

func TestSuggestNamesLimit(t *testing.T) {
	store := memory.NewProductStore(false)
	names := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
	for _, n := range names {
		store.Add(domain.Product{Name: n, Category: "misc"})
	}

	suggestions, err := store.SuggestNames(context.Background(), "a", 10)
	if err != nil {
		t.Fatalf("SuggestNames: %v", err)
	}
	if len(suggestions) != 10 {
		t.Errorf("got %d suggestions, want 10", len(suggestions))
	}
}

func TestGetProductByID(t *testing.T) {
	store := seedStore(t, false)

	p, err := store.GetProductByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if p.Name != "Lamp Shade" {
		t.Errorf("Name = %q, want %q", p.Name, "Lamp Shade")
	}

	if _, err := store.GetProductByID(context.Background(), 99); err != domain.ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
