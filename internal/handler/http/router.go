package http

import (
	"log/slog"
	"net/http"

	"github.com/bakersinn/despatch-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the settings the router needs from config
type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig, dashboardHandler DashboardHandler, datasetHandler DatasetHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetDashboard)
			r.Get("/options", dashboardHandler.GetOptions)
			r.Get("/summary", dashboardHandler.GetSummary)
			r.Get("/bread", dashboardHandler.GetBread)
			r.Get("/biscuits", dashboardHandler.GetBiscuits)
			r.Get("/export", dashboardHandler.Export)
		})

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/", datasetHandler.Status)
			r.Post("/reload", datasetHandler.Reload)
			r.Get("/events", datasetHandler.Events)
		})
	})
	return r
}
