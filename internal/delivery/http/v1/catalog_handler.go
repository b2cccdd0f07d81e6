package v1

import (
	"errors"
	"net/http"
	"strconv"

	"globemart-backend/internal/domain"
	"globemart-backend/pkg/logger"
	"globemart-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(catalogUC domain.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListProducts handles GET /api/products?limit=&offset=.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), domain.DefaultSearchLimit)
	offset := utils.ParseInt(r.URL.Query().Get("offset"), 0)

	page, err := h.catalogUC.ListProducts(r.Context(), limit, offset)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Product listing failed")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, page)
}

// GetProduct handles GET /api/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Msg("Product lookup failed")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]*domain.Product{"product": product})
}
