package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/utils/logging"
)

// UseCase is the retrieval and analysis surface the HTTP layer exposes
type UseCase interface {
	FindSimilarCases(ctx context.Context, currentCase *model.CurrentCase, limit int, filters *model.SearchFilters) ([]*model.SimilarCase, error)
	SearchByDimension(ctx context.Context, dimension types.Dimension, queryText string, limit int) ([]*model.HistoricalRecord, error)
	AnalyzePatterns(ctx context.Context, focusArea types.FocusArea, dateRange *model.DateRange) (*model.PatternAnalysis, error)
	GenerateInsightsForCase(ctx context.Context, currentCase *model.CurrentCase) (*model.CaseInsights, error)
}

type Server struct {
	router *chi.Mux
	uc     UseCase
}

type Options func(*Server)

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/search", func(r chi.Router) {
			r.Post("/similar", similarSearchHandler(s.uc))
			r.Post("/dimension", dimensionSearchHandler(s.uc))
		})
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/patterns", patternAnalysisHandler(s.uc))
			r.Post("/insights", caseInsightsHandler(s.uc))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
