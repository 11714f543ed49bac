package handlers

import (
	"net/http"

	_ "github.com/arcadia-gaming/loyaltyrank/docs"
	"github.com/arcadia-gaming/loyaltyrank/internal/config"
	analysishandlers "github.com/arcadia-gaming/loyaltyrank/internal/handlers/analysis"
	datasethandlers "github.com/arcadia-gaming/loyaltyrank/internal/handlers/datasets"
	"github.com/arcadia-gaming/loyaltyrank/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DatasetHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	LoadSample(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AnalysisHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	ExportRankings(w http.ResponseWriter, r *http.Request)
	ExportAllocations(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	DatasetHandler  DatasetHandler
	AnalysisHandler AnalysisHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		DatasetHandler:  datasethandlers.New(s.DatasetService),
		AnalysisHandler: analysishandlers.New(s.AnalysisService, cfg),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/datasets", func(r chi.Router) {
			r.Get("/", h.DatasetHandler.Status)
			r.Post("/sample", h.DatasetHandler.LoadSample)
			r.Post("/{kind}", h.DatasetHandler.Upload)
		})
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/", h.AnalysisHandler.Run)
			r.Post("/rankings/export", h.AnalysisHandler.ExportRankings)
			r.Post("/allocations/export", h.AnalysisHandler.ExportAllocations)
		})
	})

	return r
}
