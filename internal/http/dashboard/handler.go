package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

const defaultTopProducts = 5

type Handler struct {
	provider sale.Provider
	now      func() time.Time
}

func NewHandler(provider sale.Provider) *Handler {
	return &Handler{provider: provider, now: time.Now}
}

// NewHandlerAt builds a handler with a fixed evaluation clock.
func NewHandlerAt(provider sale.Provider, now func() time.Time) *Handler {
	return &Handler{provider: provider, now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/kpis", h.kpis)
	r.Get("/monthly", h.monthly)
	r.Get("/categories", h.categories)
	r.Get("/top-products", h.topProducts)
}

func (h *Handler) kpis(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, analytics.ComputeKPIs(snap.Sales, h.now()))
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, analytics.RevenueByMonth(snap.Sales))
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, analytics.RevenueByCategory(snap.Sales))
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	snap, err := h.provider.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	limit := defaultTopProducts
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	writeJSON(w, analytics.TopProducts(snap.Sales, limit))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
