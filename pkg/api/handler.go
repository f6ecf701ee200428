package api

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SultanDF/exam-dss/internal/config"
	"github.com/SultanDF/exam-dss/pkg/core/mcdm"
	"github.com/SultanDF/exam-dss/pkg/db"
)

const (
	serviceName    = "Exam Scheduling DSS"
	serviceVersion = "1.0.0"
)

// Handler owns the HTTP surface of the decision support system. The
// database may be nil, in which case the stateless endpoints keep working
// and the solution history endpoints report that no database is configured.
type Handler struct {
	config   *config.Config
	database db.SolutionStore
	engine   *mcdm.Engine
	logger   *zap.Logger

	Mux *chi.Mux
}

// NewHandler wires a handler with its router. Call RegisterRoutes before
// serving.
func NewHandler(cfg *config.Config, database db.SolutionStore, logger *zap.Logger) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		config:   cfg,
		database: database,
		engine:   mcdm.NewEngine(),
		logger:   logger,

		Mux: chi.NewRouter(),
	}
}

// RegisterRoutes attaches middleware and every endpoint to the router
func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/", h.Root)
	h.Mux.Get("/health", h.Health)
	h.Mux.Get("/methods", h.Methods)
	h.Mux.Get("/criteria", h.Criteria)
	h.Mux.Get("/sample-dataset", h.SampleDataset)

	h.Mux.Post("/ahp-weights", h.DeriveWeights)
	h.Mux.Post("/evaluate-examiners", h.EvaluateExaminers)
	h.Mux.Post("/schedule", h.GenerateSchedule)
	h.Mux.Post("/analyze-schedule", h.AnalyzeSchedule)

	h.Mux.Route("/solutions", func(r chi.Router) {
		r.Get("/", h.ListSolutions)
		r.Get("/{runID}", h.GetSolution)
	})
}
