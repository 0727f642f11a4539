package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysishandler "gsmt_backend/internal/feature/analysis/transport/handler"
	analysisusecase "gsmt_backend/internal/feature/analysis/usecase"
	catalogadapters "gsmt_backend/internal/feature/catalog/adapters"
	cataloghandler "gsmt_backend/internal/feature/catalog/transport/handler"
	catalogusecase "gsmt_backend/internal/feature/catalog/usecase"
	platformhandler "gsmt_backend/internal/platform/http/handler"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter wires the real components the way cmd/server does.
func newTestRouter() *gin.Engine {
	catalogUC := catalogusecase.NewCatalogUsecase(catalogadapters.DefaultCatalog())
	generator := analysisusecase.NewSeededPathGenerator(catalogUC, 1)
	analysisUC := analysisusecase.NewAnalysisUsecase(catalogUC, generator)

	return NewRouter(
		platformhandler.NewHealthHandler(catalogUC.Count()),
		cataloghandler.NewSymbolHandler(catalogUC),
		analysishandler.NewAnalysisHandler(analysisUC),
	)
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "root", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "symbols", method: http.MethodGet, path: "/symbols", expectedStatus: http.StatusOK},
		{name: "search", method: http.MethodGet, path: "/search/apple", expectedStatus: http.StatusOK},
		{name: "global 24h", method: http.MethodGet, path: "/global-24h", expectedStatus: http.StatusOK},
		{
			name:           "analyze",
			method:         http.MethodPost,
			path:           "/analyze",
			body:           `{"symbols":["AAPL","MSFT"],"period":"1w","chart_type":"price"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "analyze rejects unknown symbol",
			method:         http.MethodPost,
			path:           "/analyze",
			body:           `{"symbols":["AAPL","BADSYM"],"period":"1M"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{name: "unknown route", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	r := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_AnalyzeEndToEnd(t *testing.T) {
	t.Parallel()

	body := `{"symbols":["^N225","^GSPC"],"period":"24h","chart_type":"percentage"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Two markets over 24h take the global-flow path: 48 points per symbol.
	var resp struct {
		Data              map[string][]json.RawMessage `json:"data"`
		TotalSymbols      int                          `json:"total_symbols"`
		SuccessfulSymbols int                          `json:"successful_symbols"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Data, "^N225")
	require.Contains(t, resp.Data, "^GSPC")
	assert.Len(t, resp.Data["^N225"], 48)
	assert.Len(t, resp.Data["^GSPC"], 48)
	assert.Equal(t, resp.TotalSymbols, resp.SuccessfulSymbols)
}

func TestRouter_RequestIDMiddleware(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	// A generated ID is attached when the caller sends none.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A caller-provided ID is kept.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRouter_CORSHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")

	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
