package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsmt_backend/internal/feature/analysis/domain"
	"gsmt_backend/internal/feature/analysis/domain/entity"
	catalogentity "gsmt_backend/internal/feature/catalog/domain/entity"
)

// mockAnalysisUsecase is a mock implementation of the AnalysisUsecase interface.
type mockAnalysisUsecase struct {
	AnalyzeFunc    func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error)
	GlobalFlowFunc func(ctx context.Context) (*entity.Analysis, error)
}

func (m *mockAnalysisUsecase) Analyze(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, symbols, period, chartType)
	}
	return nil, nil
}

func (m *mockAnalysisUsecase) GlobalFlow(ctx context.Context) (*entity.Analysis, error) {
	if m.GlobalFlowFunc != nil {
		return m.GlobalFlowFunc(ctx)
	}
	return nil, nil
}

func (m *mockAnalysisUsecase) TradingSessions() []entity.TradingSession {
	return []entity.TradingSession{
		{Name: "Asian Session", Start: "00:00", End: "08:00", Markets: []string{"Japan"}, Color: "#f59e0b"},
	}
}

func setupRouter(uc AnalysisUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalysisHandler(uc)
	r := gin.New()
	r.POST("/analyze", h.Analyze)
	r.GET("/global-24h", h.GlobalFlow)
	return r
}

func fixtureAnalysis() *entity.Analysis {
	return &entity.Analysis{
		Data: map[string][]entity.DataPoint{
			"AAPL": {{Timestamp: "2025-06-02 12:00:00", TimestampMS: 1748865600000, Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 500000, PercentageChange: 0.5}},
		},
		Metadata: map[string]catalogentity.SymbolInfo{
			"AAPL": {Symbol: "AAPL", Name: "Apple Inc.", Market: "US", Category: "Technology", Currency: "USD"},
		},
		Period:            "1M",
		ChartType:         "percentage",
		GeneratedAt:       time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		TotalSymbols:      1,
		SuccessfulSymbols: 1,
	}
}

func TestAnalysisHandler_Analyze_Success(t *testing.T) {
	t.Parallel()

	var gotSymbols []string
	var gotPeriod, gotChart string
	uc := &mockAnalysisUsecase{
		AnalyzeFunc: func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
			gotSymbols, gotPeriod, gotChart = symbols, period, chartType
			return fixtureAnalysis(), nil
		},
	}

	body := `{"symbols":["AAPL"],"period":"1M","chart_type":"percentage"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"AAPL"}, gotSymbols)
	assert.Equal(t, "1M", gotPeriod)
	assert.Equal(t, "percentage", gotChart)

	var resp struct {
		Success           bool                           `json:"success"`
		Data              map[string][]entity.DataPoint  `json:"data"`
		Metadata          map[string]json.RawMessage     `json:"metadata"`
		Period            string                         `json:"period"`
		Timestamp         string                         `json:"timestamp"`
		TotalSymbols      int                            `json:"total_symbols"`
		SuccessfulSymbols int                            `json:"successful_symbols"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data["AAPL"], 1)
	assert.Contains(t, resp.Metadata, "AAPL")
	assert.Equal(t, "1M", resp.Period)
	assert.Equal(t, "2025-06-02T12:00:00Z", resp.Timestamp)
	assert.Equal(t, 1, resp.TotalSymbols)
	assert.Equal(t, 1, resp.SuccessfulSymbols)
}

func TestAnalysisHandler_Analyze_Defaults(t *testing.T) {
	t.Parallel()

	var gotPeriod, gotChart string
	uc := &mockAnalysisUsecase{
		AnalyzeFunc: func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
			gotPeriod, gotChart = period, chartType
			return fixtureAnalysis(), nil
		},
	}

	body := `{"symbols":["AAPL"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "24h", gotPeriod)
	assert.Equal(t, "percentage", gotChart)
}

func TestAnalysisHandler_Analyze_InvalidSymbols(t *testing.T) {
	t.Parallel()

	uc := &mockAnalysisUsecase{
		AnalyzeFunc: func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
			return nil, &domain.InvalidSymbolError{Symbols: []string{"BADSYM", "WORSE"}}
		},
	}

	body := `{"symbols":["AAPL","BADSYM","WORSE"],"period":"1M"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Unsupported symbols: BADSYM, WORSE"}`, w.Body.String())
}

func TestAnalysisHandler_Analyze_BindingRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing symbols", body: `{"period":"1M"}`},
		{name: "empty symbols", body: `{"symbols":[]}`},
		{name: "too many symbols", body: `{"symbols":["A","B","C","D","E","F","G","H","I","J","K"]}`},
		{name: "period outside enumeration", body: `{"symbols":["AAPL"],"period":"weekly"}`},
		{name: "chart type outside enumeration", body: `{"symbols":["AAPL"],"chart_type":"heatmap"}`},
		{name: "malformed json", body: `{"symbols":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockAnalysisUsecase{
				AnalyzeFunc: func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
					t.Fatal("usecase must not run when binding fails")
					return nil, nil
				},
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupRouter(uc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAnalysisHandler_Analyze_InternalError(t *testing.T) {
	t.Parallel()

	uc := &mockAnalysisUsecase{
		AnalyzeFunc: func(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error) {
			return nil, errors.New("something unexpected")
		},
	}

	body := `{"symbols":["AAPL"],"period":"1M"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalysisHandler_GlobalFlow(t *testing.T) {
	t.Parallel()

	uc := &mockAnalysisUsecase{
		GlobalFlowFunc: func(ctx context.Context) (*entity.Analysis, error) {
			a := fixtureAnalysis()
			a.Period = "24h"
			return a, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/global-24h", nil)
	setupRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success        bool                     `json:"success"`
		Period         string                   `json:"period"`
		MarketSessions []entity.TradingSession  `json:"market_sessions"`
		Description    string                   `json:"description"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "24h", resp.Period)
	require.Len(t, resp.MarketSessions, 1)
	assert.Equal(t, "Asian Session", resp.MarketSessions[0].Name)
	assert.NotEmpty(t, resp.Description)
}

func TestAnalysisHandler_GlobalFlow_Error(t *testing.T) {
	t.Parallel()

	uc := &mockAnalysisUsecase{
		GlobalFlowFunc: func(ctx context.Context) (*entity.Analysis, error) {
			return nil, errors.New("boom")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/global-24h", nil)
	setupRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
