package usecase

import (
	"context"
	"fmt"
	"time"

	"globemart-backend/internal/domain"
	"globemart-backend/pkg/cache"
)

type catalogUsecase struct {
	store        domain.ProductStore
	cache        cache.CacheService
	listTTL      time.Duration
	assetBaseURL string
	timeout      time.Duration
}

func NewCatalogUsecase(store domain.ProductStore, cacheSvc cache.CacheService, listTTL time.Duration, assetBaseURL string, timeout time.Duration) domain.CatalogUsecase {
	return &catalogUsecase{
		store:        store,
		cache:        cacheSvc,
		listTTL:      listTTL,
		assetBaseURL: assetBaseURL,
		timeout:      timeout,
	}
}

func (u *catalogUsecase) ListProducts(ctx context.Context, limit, offset int) (domain.ProductPage, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	limit = domain.ClampLimit(limit)
	offset = domain.ClampOffset(offset)

	cacheKey := fmt.Sprintf("products:list:%d:%d", limit, offset)
	if cached, found := u.cache.Get(cacheKey); found {
		if page, ok := cached.(domain.ProductPage); ok {
			return page, nil
		}
	}

	products, total, err := u.store.ListProducts(ctx, limit, offset)
	if err != nil {
		return domain.ProductPage{}, err
	}

	resolveImageURLs(products, u.assetBaseURL)

	page := domain.ProductPage{
		Products: products,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}

	u.cache.Set(cacheKey, page, u.listTTL)
	return page, nil
}

func (u *catalogUsecase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	product, err := u.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.ImageURL = resolveImageURL(product.Image, u.assetBaseURL)
	return product, nil
}
