package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/paydeck/transactions-console/internal/handlers"
	"github.com/paydeck/transactions-console/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	dh := handlers.NewDashboardHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session)
		r.Mount("/dashboard", dh.DashboardRoutes())
		r.Mount("/transactions", th.TransactionRoutes())
	})

	return r
}
