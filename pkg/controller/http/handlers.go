package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/labchain/anamnesis/pkg/utils/errutil"
	"github.com/labchain/anamnesis/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// statusFor maps domain errors onto HTTP status codes. An unbuilt index
// is a conflict with the server's current state, not a client mistake;
// upstream service failures surface as bad gateway.
func statusFor(err error) int {
	switch {
	case errors.Is(err, index.ErrNotInitialized):
		return http.StatusConflict
	case errors.Is(err, index.ErrEmbeddingService),
		errors.Is(err, usecase.ErrGenerationService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, map[string]string{"status": "ok"})
}

func similarSearchHandler(uc UseCase) http.HandlerFunc {
	type request struct {
		CurrentCase *model.CurrentCase   `json:"currentCase"`
		Limit       int                  `json:"limit"`
		Filters     *model.SearchFilters `json:"filters,omitempty"`
	}
	type response struct {
		Cases []*model.SimilarCase `json:"cases"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if req.CurrentCase == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("currentCase is required"), http.StatusBadRequest)
			return
		}

		cases, err := uc.FindSimilarCases(r.Context(), req.CurrentCase, req.Limit, req.Filters)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		if cases == nil {
			cases = []*model.SimilarCase{}
		}
		respondJSON(w, r, response{Cases: cases})
	}
}

func dimensionSearchHandler(uc UseCase) http.HandlerFunc {
	type request struct {
		Dimension string `json:"dimension"`
		Query     string `json:"query"`
		Limit     int    `json:"limit"`
	}
	type response struct {
		Records []*model.HistoricalRecord `json:"records"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		dimension, err := types.ParseDimension(req.Dimension)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid dimension"), http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("query is required"), http.StatusBadRequest)
			return
		}

		records, err := uc.SearchByDimension(r.Context(), dimension, req.Query, req.Limit)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		if records == nil {
			records = []*model.HistoricalRecord{}
		}
		respondJSON(w, r, response{Records: records})
	}
}

func patternAnalysisHandler(uc UseCase) http.HandlerFunc {
	type request struct {
		FocusArea string           `json:"focusArea"`
		DateRange *model.DateRange `json:"dateRange,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		focusArea, err := types.ParseFocusArea(req.FocusArea)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid focus area"), http.StatusBadRequest)
			return
		}

		analysis, err := uc.AnalyzePatterns(r.Context(), focusArea, req.DateRange)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, analysis)
	}
}

func caseInsightsHandler(uc UseCase) http.HandlerFunc {
	type request struct {
		CurrentCase *model.CurrentCase `json:"currentCase"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		if req.CurrentCase == nil {
			errutil.HandleHTTP(r.Context(), w, goerr.New("currentCase is required"), http.StatusBadRequest)
			return
		}

		insights, err := uc.GenerateInsightsForCase(r.Context(), req.CurrentCase)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, insights)
	}
}
