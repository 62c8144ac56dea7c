package sales

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

// list returns the filtered, sorted sales view with its summary
// totals. Unknown status and sort tokens fall back to their defaults
// instead of failing.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	q := sale.Query{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Sort:   sale.SortKey(r.URL.Query().Get("sort")),
	}

	filtered := sale.Apply(snap.Sales, q)

	resp := listResponse{
		Totals: analytics.FilteredTotals(filtered),
		Sales:  toResponseList(filtered),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
