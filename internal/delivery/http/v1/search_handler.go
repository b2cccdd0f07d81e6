package v1

import (
	"net/http"

	"globemart-backend/internal/domain"
	"globemart-backend/pkg/logger"
	"globemart-backend/pkg/utils"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(searchUC domain.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// Search handles GET /api/search?q=&limit=&offset=. Missing or malformed
// numeric parameters are coerced to defaults, never rejected.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := utils.ParseInt(r.URL.Query().Get("limit"), domain.DefaultSearchLimit)
	offset := utils.ParseInt(r.URL.Query().Get("offset"), 0)

	result, err := h.searchUC.Search(r.Context(), q, limit, offset)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Search failed")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// Suggestions handles GET /api/search/suggestions?q=.
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	suggestions, err := h.searchUC.Suggest(r.Context(), q)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Suggestions failed")
		utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
}
