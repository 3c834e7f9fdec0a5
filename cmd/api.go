package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/btc-haven/haven-cli/internal/catalog"
	"github.com/btc-haven/haven-cli/internal/config"
	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
	"github.com/btc-haven/haven-cli/internal/store"
)

// apiServer holds the serve-mode dependencies. The store may be nil, in
// which case run persistence is disabled and POST /api/score ignores
// save requests.
type apiServer struct {
	jurisdictions []model.Jurisdiction
	store         store.Store
	defaultPreset scorer.Preset
}

// newRouter wires the HTTP API. The quiz frontend is a browser app on a
// different origin, hence CORS.
func newRouter(cfg config.ServerConfig, api *apiServer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(rateLimitMiddleware(cfg))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/jurisdictions", api.handleListJurisdictions)
		r.Get("/jurisdictions/{slug}", api.handleGetJurisdiction)
		r.Get("/score", api.handleScoreQuery)
		r.Post("/score", api.handleScoreJSON)
		r.Get("/presets/recommend", api.handleRecommendPreset)
	})

	return r
}

// rateLimitMiddleware applies a process-wide token bucket to every
// request. A single bucket is enough here; the API is a small read-mostly
// surface in front of a static catalog.
func rateLimitMiddleware(cfg config.ServerConfig) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (api *apiServer) handleListJurisdictions(w http.ResponseWriter, r *http.Request) {
	list := api.jurisdictions
	switch r.URL.Query().Get("set") {
	case "top":
		list = catalog.Top(api.jurisdictions)
	case "honorable-mentions":
		list = catalog.HonorableMentions(api.jurisdictions)
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *apiServer) handleGetJurisdiction(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	j := catalog.BySlug(api.jurisdictions, slug)
	if j == nil {
		writeError(w, http.StatusNotFound, "unknown jurisdiction")
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// scoreResponse is the ranked result payload for both score endpoints.
type scoreResponse struct {
	Preset  scorer.Preset               `json:"preset"`
	Results []scorer.ScoredJurisdiction `json:"results"`
	RunID   string                      `json:"run_id,omitempty"`
}

// handleScoreQuery scores answers carried in the flat quiz query format.
// Unknown or missing fields fall back to defaults; well-formed HTTP
// input never produces a 5xx here.
func (api *apiServer) handleScoreQuery(w http.ResponseWriter, r *http.Request) {
	answers, _ := model.DecodeQuery(r.URL.Query())
	preset := api.resolvePreset(scorer.Preset(r.URL.Query().Get("preset")), answers)

	results := scorer.ScoreJurisdictions(api.jurisdictions, answers, preset, nil)
	writeJSON(w, http.StatusOK, scoreResponse{Preset: preset, Results: results})
}

// scoreRequest is the JSON body for POST /api/score. Answer fields the
// caller omits keep their defaults.
type scoreRequest struct {
	Answers model.QuizAnswers       `json:"answers"`
	Preset  scorer.Preset           `json:"preset,omitempty"`
	Weights *scorer.WeightOverrides `json:"weights,omitempty"`
	Save    bool                    `json:"save,omitempty"`
}

func (api *apiServer) handleScoreJSON(w http.ResponseWriter, r *http.Request) {
	req := scoreRequest{Answers: model.DefaultAnswers()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	preset := api.resolvePreset(req.Preset, req.Answers)
	if req.Weights != nil {
		effective := req.Weights.Apply(scorer.PresetWeights(preset))
		if err := effective.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, eris.Cause(err).Error())
			return
		}
	}
	results := scorer.ScoreJurisdictions(api.jurisdictions, req.Answers, preset, req.Weights)

	resp := scoreResponse{Preset: preset, Results: results}
	if req.Save && api.store != nil {
		run, err := api.store.SaveRun(r.Context(), req.Answers, preset, req.Weights, results)
		if err != nil {
			zap.L().Error("save run failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save run")
			return
		}
		resp.RunID = run.ID
	}

	writeJSON(w, http.StatusOK, resp)
}

func (api *apiServer) handleRecommendPreset(w http.ResponseWriter, r *http.Request) {
	answers, _ := model.DecodeQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, map[string]scorer.Preset{
		"preset": scorer.RecommendPreset(answers),
	})
}

// resolvePreset applies the configured default and the "auto"
// recommendation sentinel.
func (api *apiServer) resolvePreset(p scorer.Preset, answers model.QuizAnswers) scorer.Preset {
	switch p {
	case "":
		return api.defaultPreset
	case "auto":
		return scorer.RecommendPreset(answers)
	default:
		return p
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
