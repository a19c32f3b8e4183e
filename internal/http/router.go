package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bundakue/titipan/internal/auth"
	authhttp "github.com/bundakue/titipan/internal/http/auth"
	cataloghttp "github.com/bundakue/titipan/internal/http/catalog"
	consignmenthttp "github.com/bundakue/titipan/internal/http/consignment"
	exporthttp "github.com/bundakue/titipan/internal/http/export"
	"github.com/bundakue/titipan/internal/http/importcsv"
	reporthttp "github.com/bundakue/titipan/internal/http/report"
)

func New(
	sessions *auth.Service,
	authV1 *authhttp.Handler,
	catalogV1 *cataloghttp.Handler,
	consignmentsV1 *consignmenthttp.Handler,
	reportsV1 *reporthttp.Handler,
	exportV1 *exporthttp.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(sessions))

			r.Route("/partners", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				catalogV1.PartnerRoutes(r)
			})

			r.Route("/products", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				catalogV1.ProductRoutes(r)
			})

			r.Route("/consignments", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				consignmentsV1.Routes(r)
			})

			r.Route("/reports", func(r chi.Router) {
				reportsV1.Routes(r)
				r.Route("/export", exportV1.Routes)
			})

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
