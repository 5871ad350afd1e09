package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"DIYCalc/internal/catalog"
	"DIYCalc/internal/config"
	"DIYCalc/internal/limit"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router(t *testing.T, burst int) http.Handler {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>DIY</h1>"), 0o600))
	cat, err := catalog.Load()
	require.NoError(t, err)
	cfg := config.Config{BaseURL: "https://example.com", StaticDir: static}

	r := mux.NewRouter()
	HandleList(r, cfg, cat, limit.NewIPRateLimiter(0.01, burst))
	return CORS(r)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	h := router(t, 100)
	wall := `{"mode":"wall","wall_type":"exterior","length":20,"height":8,"spacing":16,"waste_factor_percent":10}`

	cases := []struct {
		method, target, body string
		code                 int
		contains             string
	}{
		{"POST", "/api/tools/framing/calc", wall, 200, `"stud_count":17`},
		{"POST", "/api/tools/framing/batch", `{"items":[` + wall + `]}`, 200, `"ready":1`},
		{"POST", "/api/tools/framing/compare", wall, 200, `"recommended":24`},
		{"POST", "/api/tools/framing/lumber", `{"spec":` + wall + `}`, 200, `"boards":27`},
		{"POST", "/api/tools/framing/report/html", wall, 200, "https://example.com/calculators/construction-and-building/framing-material-estimator"},
		{"POST", "/api/tools/lumber/calc", `{"linear_feet":16}`, 200, `"boards":2`},
		{"POST", "/api/tools/slab/calc", `{"length_ft":10,"width_ft":10,"thickness_in":4}`, 200, `"bags"`},
		{"POST", "/api/tools/paint/calc", `{"room_length_ft":12,"room_width_ft":10,"ceiling_height_ft":8}`, 200, `"gallons"`},
		{"GET", "/api/catalog/categories", "", 200, "construction-and-building"},
		{"GET", "/api/catalog/calculators/framing-material-estimator", "", 200, "/api/tools/framing/calc"},
		{"GET", "/api/catalog/search?q=paint", "", 200, "paint-coverage-calculator"},
		{"GET", "/sitemap.xml", "", 200, "<loc>https://example.com</loc>"},
		{"GET", "/", "", 200, "<h1>DIY</h1>"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := serve(h, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := serve(router(t, 100), http.MethodOptions, "/api/tools/framing/calc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIRateLimited(t *testing.T) {
	h := router(t, 1)
	assert.Equal(t, http.StatusOK, serve(h, "GET", "/api/catalog/categories", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "GET", "/api/catalog/categories", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, "GET", "/sitemap.xml", "").Code, "only /api is limited")
}
