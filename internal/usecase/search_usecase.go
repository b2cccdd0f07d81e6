package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"globemart-backend/internal/domain"
	"globemart-backend/pkg/cache"
	"globemart-backend/pkg/utils"
)

type searchUsecase struct {
	store         domain.ProductStore
	cache         cache.CacheService
	suggestionTTL time.Duration
	assetBaseURL  string
	timeout       time.Duration
}

func NewSearchUsecase(store domain.ProductStore, cacheSvc cache.CacheService, suggestionTTL time.Duration, assetBaseURL string, timeout time.Duration) domain.SearchUsecase {
	return &searchUsecase{
		store:         store,
		cache:         cacheSvc,
		suggestionTTL: suggestionTTL,
		assetBaseURL:  assetBaseURL,
		timeout:       timeout,
	}
}

// Search normalizes the query, clamps pagination, and runs the count+fetch
// pair against the store. An offset beyond the total yields an empty page
// with the total unchanged.
func (u *searchUsecase) Search(ctx context.Context, query string, limit, offset int) (domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	query = utils.NormalizeQuery(query)
	limit = domain.ClampLimit(limit)
	offset = domain.ClampOffset(offset)

	results, total, err := u.store.SearchProducts(ctx, query, limit, offset)
	if err != nil {
		return domain.SearchResult{}, err
	}

	resolveImageURLs(results, u.assetBaseURL)

	return domain.SearchResult{
		Query:   query,
		Results: results,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// Suggest returns up to SuggestionLimit distinct matching names. Prefixes
// shorter than MinSuggestPrefix skip the store entirely so every keystroke
// doesn't turn into a full scan.
func (u *searchUsecase) Suggest(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	prefix = utils.NormalizeQuery(prefix)
	if utf8.RuneCountInString(prefix) < domain.MinSuggestPrefix {
		return []string{}, nil
	}

	cacheKey := "suggest:" + prefix
	if cached, found := u.cache.Get(cacheKey); found {
		if suggestions, ok := cached.([]string); ok {
			return suggestions, nil
		}
	}

	suggestions, err := u.store.SuggestNames(ctx, prefix, domain.SuggestionLimit)
	if err != nil {
		return nil, err
	}

	u.cache.Set(cacheKey, suggestions, u.suggestionTTL)
	return suggestions, nil
}
