package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	v1 "globemart-backend/internal/delivery/http/v1"
	"globemart-backend/internal/domain"
	infracache "globemart-backend/internal/infrastructure/cache"
	"globemart-backend/internal/repository/memory"
	"globemart-backend/internal/usecase"
)

func newSearchServer(t *testing.T, productCount int) http.Handler {
	t.Helper()

	store := memory.NewProductStore(false)
	for i := 0; i < productCount; i++ {
		store.Add(domain.Product{
			Name:     fmt.Sprintf("Gadget %02d", i),
			Category: "Electronics",
		})
	}

	cacheSvc := infracache.NewMemoryCache(time.Minute, time.Minute)
	uc := usecase.NewSearchUsecase(store, cacheSvc, 30*time.Second, "https://assets.example.com", 5*time.Second)
	handler := v1.NewSearchHandler(uc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", handler.Search)
	mux.HandleFunc("GET /api/search/suggestions", handler.Suggestions)
	return mux
}

func TestSearchEndpointDefaults(t *testing.T) {
	srv := newSearchServer(t, 30)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=gadget", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if result.Query != "gadget" {
		t.Errorf("query = %q, want %q", result.Query, "gadget")
	}
	if result.Limit != 12 {
		t.Errorf("limit = %d, want 12", result.Limit)
	}
	if result.Offset != 0 {
		t.Errorf("offset = %d, want 0", result.Offset)
	}
	if result.Total != 30 {
		t.Errorf("total = %d, want 30", result.Total)
	}
	if len(result.Results) != 12 {
		t.Errorf("got %d results, want 12", len(result.Results))
	}
}

func TestSearchEndpointCoercesBadParams(t *testing.T) {
	srv := newSearchServer(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=gadget&limit=abc&offset=xyz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Limit != 12 || result.Offset != 0 {
		t.Errorf("limit/offset = %d/%d, want 12/0", result.Limit, result.Offset)
	}
}

func TestSearchEndpointNoQuery(t *testing.T) {
	srv := newSearchServer(t, 3)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var result domain.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Query != "" {
		t.Errorf("query = %q, want empty", result.Query)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	srv := newSearchServer(t, 5)

	tests := []struct {
		name      string
		url       string
		wantCount int
	}{
		{name: "matching prefix", url: "/api/search/suggestions?q=gadget", wantCount: 5},
		{name: "short prefix gated", url: "/api/search/suggestions?q=g", wantCount: 0},
		{name: "missing prefix gated", url: "/api/search/suggestions", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var body struct {
				Suggestions []string `json:"suggestions"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Suggestions == nil {
				t.Fatal("suggestions field missing or null")
			}
			if len(body.Suggestions) != tt.wantCount {
				t.Errorf("got %d suggestions, want %d", len(body.Suggestions), tt.wantCount)
			}
		})
	}
}
