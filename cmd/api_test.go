package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btc-haven/haven-cli/internal/catalog"
	"github.com/btc-haven/haven-cli/internal/config"
	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
	"github.com/btc-haven/haven-cli/internal/store"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:            8080,
		CORSOrigins:     []string{"*"},
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	jurisdictions, err := catalog.Load()
	require.NoError(t, err)

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	return newRouter(testServerConfig(), &apiServer{
		jurisdictions: jurisdictions,
		store:         st,
		defaultPreset: scorer.PresetBalanced,
	})
}

func doRequest(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListJurisdictions(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jurisdictions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []model.Jurisdiction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 14)

	rec = doRequest(t, router, http.MethodGet, "/api/jurisdictions?set=top", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var top []model.Jurisdiction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	assert.Len(t, top, 7)
}

func TestGetJurisdiction(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/jurisdictions/portugal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var j model.Jurisdiction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &j))
	assert.Equal(t, "Portugal", j.Country)

	rec = doRequest(t, router, http.MethodGet, "/api/jurisdictions/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreQueryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/score?cit=american&bu=hodl", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, scorer.PresetBalanced, resp.Preset)
	require.Len(t, resp.Results, 14)
	assert.Equal(t, "puerto-rico", resp.Results[0].Slug)
}

func TestScoreQueryEndpointDefaultsOnGarbage(t *testing.T) {
	router := newTestRouter(t)

	// Unknown values fall back to defaults instead of erroring.
	rec := doRequest(t, router, http.MethodGet, "/api/score?cit=martian&bu=mining&db=banana", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 14)
	assert.Empty(t, resp.RunID)
}

func TestScoreQueryEndpointAutoPreset(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/score?cit=non-american&bu=trade&preset=auto", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, scorer.PresetTaxEfficiency, resp.Preset)
}

func TestScoreJSONEndpoint(t *testing.T) {
	router := newTestRouter(t)

	answers := model.DefaultAnswers()
	answers.Citizenship = model.CitizenshipAmerican
	body, err := json.Marshal(scoreRequest{
		Answers: answers,
		Preset:  scorer.PresetFamilyFirst,
		Save:    true,
	})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/score", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, scorer.PresetFamilyFirst, resp.Preset)
	assert.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Results, 14)
	assert.Equal(t, "puerto-rico", resp.Results[0].Slug)
}

func TestScoreJSONEndpointBadBody(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPost, "/api/score", []byte("{nope"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendPresetEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/presets/recommend?cit=non-american&bu=business", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"preset":"tax-efficiency"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/presets/recommend", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"preset":"balanced"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	jurisdictions, err := catalog.Load()
	require.NoError(t, err)

	cfg := testServerConfig()
	cfg.RateLimitPerSec = 0.001
	cfg.RateLimitBurst = 1
	router := newRouter(cfg, &apiServer{
		jurisdictions: jurisdictions,
		defaultPreset: scorer.PresetBalanced,
	})

	first := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
