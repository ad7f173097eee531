package handler

import (
	"encoding/json"
	"net/http"

	"github.com/damon-houk/currency-converter/internal/application/service"
	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
	"github.com/damon-houk/currency-converter/internal/infrastructure/metrics"
	"github.com/damon-houk/currency-converter/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

// FavoritesHandler handles favorite currency pairs
type FavoritesHandler struct {
	service *service.FavoritesService
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(svc *service.FavoritesService, m *metrics.Metrics, log logger.Logger) *FavoritesHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &FavoritesHandler{
		service: svc,
		metrics: m,
		logger:  log,
	}
}

// SaveFavorite handles POST /favorites. A pair that is already saved is
// answered with 200 instead of 201.
func (h *FavoritesHandler) SaveFavorite(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req SaveFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	pair, added, err := h.service.Save(r.Context(), req.Base, req.Target)
	observe(h.metrics, ActionSaveFavorite, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, FavoriteResponse{
		Pair:   pair.String(),
		Base:   pair.Base,
		Target: pair.Target,
		Added:  added,
	})
}

// ListFavorites handles GET /favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, FavoritesResponse{
		Favorites: lo.Map(pairs, func(p entity.FavoritePair, _ int) string { return p.String() }),
	})
}

// LoadFavorite handles GET /favorites/{pair}, splitting it back into base and
// target
func (h *FavoritesHandler) LoadFavorite(w http.ResponseWriter, r *http.Request) {
	pair := mux.Vars(r)["pair"]

	base, target, err := h.service.Load(pair)
	observe(h.metrics, ActionLoadFavorite, err)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, FavoriteResponse{
		Pair:   base + entity.PairSeparator + target,
		Base:   base,
		Target: target,
	})
}

// RegisterRoutes registers the favorites handler routes
func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/favorites", h.SaveFavorite).Methods("POST")
	router.HandleFunc("/favorites", h.ListFavorites).Methods("GET")
	router.HandleFunc("/favorites/{pair}", h.LoadFavorite).Methods("GET")

	h.logger.Info("Favorites routes registered", map[string]interface{}{
		"routes": []string{
			"POST /favorites",
			"GET /favorites",
			"GET /favorites/{pair}",
		},
	})
}
