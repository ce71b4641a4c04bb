// Package api wires Splitcart's HTTP routes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitcart/splitcart/internal/api/handlers"
	"github.com/splitcart/splitcart/internal/auth"
	"github.com/splitcart/splitcart/internal/middleware"
	"github.com/splitcart/splitcart/internal/service"
)

// Deps bundles everything the router needs.
type Deps struct {
	Authenticator auth.Authenticator
	JWTManager    *auth.JWTManager
	Users         auth.UserStorage
	Lists         service.ListServiceProvider
	Items         service.ItemServiceProvider
	Debts         service.DebtServiceProvider
	CORSOrigin    string
}

// NewRouter creates and configures a new chi router.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(routePattern))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.JWTManager, deps.Users)
	listHandler := handlers.NewListHandler(deps.Lists)
	itemHandler := handlers.NewItemHandler(deps.Items)
	debtHandler := handlers.NewDebtHandler(deps.Debts)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(deps.JWTManager))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/lists", func(r chi.Router) {
				r.Get("/", listHandler.GetAll)
				r.Post("/", listHandler.Create)
				r.Post("/join/{code}", listHandler.Join)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/items", itemHandler.GetForList)
					r.Post("/items", itemHandler.Add)
					r.Get("/debts", debtHandler.GetForList)
					r.Post("/debts/calculate", debtHandler.Calculate)
				})
			})

			r.Patch("/items/{id}", itemHandler.Update)
			r.Post("/debts/{id}/settle", debtHandler.Settle)
		})
	})

	return r
}

// routePattern resolves the chi route template for a finished request so
// metric labels stay low-cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
