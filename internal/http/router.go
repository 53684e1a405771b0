package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nlithgow/vatu/internal/http/category"
	"github.com/nlithgow/vatu/internal/http/envelope"
	"github.com/nlithgow/vatu/internal/http/goal"
	"github.com/nlithgow/vatu/internal/http/recurring"
	"github.com/nlithgow/vatu/internal/http/report"
	"github.com/nlithgow/vatu/internal/http/transaction"
	"github.com/nlithgow/vatu/internal/http/userctx"
)

func New(
	allowedOrigins []string,
	categoriesV1 *category.Handler,
	transactionsV1 *transaction.Handler,
	envelopesV1 *envelope.Handler,
	goalsV1 *goal.Handler,
	recurringV1 *recurring.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(userctx.Middleware)

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/envelopes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			envelopesV1.Routes(r)
		})

		r.Route("/savings-goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/recurring-transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recurringV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})
	})

	return router
}
