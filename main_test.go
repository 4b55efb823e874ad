package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/config"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	cfg := &config.Config{
		Share: config.ShareConfig{Key: []byte("k"), TTL: time.Hour},
		Rate:  config.RateConfig{PerSecond: 100, Burst: 100},
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	router := mux.NewRouter()
	require.NoError(t, HandleList(ctx, router, cfg))
	return router
}

func TestRoutes(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodPost, "/api/bmi/calc", `{"weight": 70, "height": 175}`, http.StatusOK},
		{http.MethodPost, "/api/bmi/export?format=json", `{"weight": 70, "height": 175}`, http.StatusOK},
		{http.MethodPost, "/api/bmi/batch", `{"items": [{"weight": 70, "height": 175}]}`, http.StatusOK},
		{http.MethodPost, "/api/bmi/report", `{"measurement": {"weight": 70, "height": 175}}`, http.StatusOK},
		{http.MethodPost, "/api/bmi/share", `{"weight": 70, "height": 175}`, http.StatusCreated},
		{http.MethodGet, "/api/share/bogus", "", http.StatusBadRequest},
		// Subrouter method mismatches fall through to not-found.
		{http.MethodGet, "/api/bmi/calc", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, tc.status, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_CalcBody(t *testing.T) {
	router := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/bmi/calc", strings.NewReader(`{"weight": 50, "height": 170, "gender": "female"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var res bmi.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, bmi.Underweight, res.Category)
	require.InDelta(t, 61.7, res.IdealWeightKg, 1e-9)
}

func TestHandleList_EmptyKey(t *testing.T) {
	require.Error(t, HandleList(context.Background(), mux.NewRouter(), &config.Config{}))
}
