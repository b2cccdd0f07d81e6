package usecase

import (
	"strings"

	"globemart-backend/internal/domain"
)

// resolveImageURLs fills ImageURL for each product by concatenating the asset
// origin with the stored image key. Keys that are already absolute URLs pass
// through unchanged.
func resolveImageURLs(products []domain.Product, base string) {
	for i := range products {
		products[i].ImageURL = resolveImageURL(products[i].Image, base)
	}
}

func resolveImageURL(key, base string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(key, "/")
}
