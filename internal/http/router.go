package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jgrattan/fieldhand/internal/http/crop"
	"github.com/jgrattan/fieldhand/internal/http/export"
	"github.com/jgrattan/fieldhand/internal/http/farm"
	"github.com/jgrattan/fieldhand/internal/http/importcsv"
	"github.com/jgrattan/fieldhand/internal/http/profile"
	"github.com/jgrattan/fieldhand/internal/http/task"
	"github.com/jgrattan/fieldhand/internal/http/transaction"
	"github.com/jgrattan/fieldhand/internal/http/weather"
)

func New(
	farmsV1 *farm.Handler,
	cropsV1 *crop.Handler,
	tasksV1 *task.Handler,
	transactionsV1 *transaction.Handler,
	weatherV1 *weather.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	profileV1 *profile.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/farms", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			farmsV1.Routes(r)
		})

		r.Route("/crops", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cropsV1.Routes(r)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			tasksV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/weather", weatherV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})

		r.Route("/profile", profileV1.Routes)
	})

	return router
}
