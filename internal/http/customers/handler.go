package customers

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
	Totals    analytics.CustomerTotals    `json:"totals"`
	Customers []analytics.CustomerProfile `json:"customers"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	profiles := analytics.CustomerProfiles(snap.Customers, snap.Sales)

	// Totals cover the whole base, before ordering.
	totals := analytics.ComputeCustomerTotals(profiles)

	analytics.SortCustomerProfiles(profiles, analytics.ProfileSortKey(r.URL.Query().Get("sort")))

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(listResponse{Totals: totals, Customers: profiles}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
