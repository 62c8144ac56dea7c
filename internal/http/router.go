package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pablolacamera1/ventaspanel/internal/http/customers"
	"github.com/pablolacamera1/ventaspanel/internal/http/dashboard"
	"github.com/pablolacamera1/ventaspanel/internal/http/products"
	"github.com/pablolacamera1/ventaspanel/internal/http/reports"
	"github.com/pablolacamera1/ventaspanel/internal/http/sales"
)

func New(
	dashboardV1 *dashboard.Handler,
	salesV1 *sales.Handler,
	customersV1 *customers.Handler,
	productsV1 *products.Handler,
	reportsV1 *reports.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)
		r.Route("/sales", salesV1.Routes)
		r.Route("/customers", customersV1.Routes)
		r.Route("/products", productsV1.Routes)
		r.Route("/reports", reportsV1.Routes)
	})

	return router
}
