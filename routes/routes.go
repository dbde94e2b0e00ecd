package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/biztime/app"
	"github.com/upb/biztime/handlers"
	"github.com/upb/biztime/middleware"
	"github.com/upb/biztime/utils"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.Timeout(deps.Config.Server.RequestTimeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteMethodNotAllowed(w, "")
	})

	// Health check endpoints
	var db handlers.DatabaseChecker
	if deps.DB != nil {
		db = deps.DB
	}
	health := handlers.NewHealthHandler(db, deps.Logger)
	r.Get("/healthz", health.HandleHealth)
	r.Get("/readyz", health.HandleReadiness)

	companies := handlers.NewCompanyHandler(deps.CompanyService, deps.Logger)
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companies.HandleList)
		r.Post("/", companies.HandleCreate)
		r.Get("/{code}", companies.HandleGet)
		r.Patch("/{code}", companies.HandleUpdate)
		r.Delete("/{code}", companies.HandleDelete)
	})

	invoices := handlers.NewInvoiceHandler(deps.InvoiceService, deps.Logger)
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoices.HandleList)
		r.Post("/", invoices.HandleCreate)
		r.Get("/{id}", invoices.HandleGet)
		r.Patch("/{id}", invoices.HandleUpdate)
		r.Delete("/{id}", invoices.HandleDelete)
	})

	industries := handlers.NewIndustryHandler(deps.IndustryService, deps.Logger)
	r.Route("/industries", func(r chi.Router) {
		r.Get("/", industries.HandleList)
		r.Post("/", industries.HandleCreate)
		r.Post("/{code}/companies", industries.HandleAssociate)
	})

	return r
}
