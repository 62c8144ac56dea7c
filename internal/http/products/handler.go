package products

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type Handler struct {
	provider sale.Provider
}

func NewHandler(provider sale.Provider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type listResponse struct {
	Totals     analytics.ProductTotals    `json:"totals"`
	Categories []string                   `json:"categories"`
	Products   []analytics.ProductProfile `json:"products"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	profiles := analytics.ProductProfiles(snap.Products, snap.Sales)
	profiles = analytics.FilterProductsByCategory(profiles, r.URL.Query().Get("category"))
	analytics.SortProductProfiles(profiles, analytics.ProfileSortKey(r.URL.Query().Get("sort")))

	resp := listResponse{
		Totals:     analytics.ComputeProductTotals(profiles),
		Categories: snap.Categories(),
		Products:   profiles,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
