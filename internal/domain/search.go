package domain

import "context"

// SearchResult is the uniform search envelope: the normalized query that was
// executed, one page of matches, and the match count before pagination.
type SearchResult struct {
	Query   string    `json:"query"`
	Results []Product `json:"results"`
	Total   int64     `json:"total"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
}

type SearchUsecase interface {
	Search(ctx context.Context, query string, limit, offset int) (SearchResult, error)
	Suggest(ctx context.Context, prefix string) ([]string, error)
}
