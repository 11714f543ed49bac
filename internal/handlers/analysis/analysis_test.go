package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/config"
	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/arcadia-gaming/loyaltyrank/internal/dto"
	"github.com/arcadia-gaming/loyaltyrank/internal/service/analysisservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newHandler(t *testing.T) (*AnalysisHandler, *MockService) {
	ctrl := gomock.NewController(t)
	mockService := NewMockService(ctrl)
	cfg := &config.Config{
		BonusTopSize:  50,
		BreakdownSize: 10,
		BonusPool:     50000,
	}
	return New(mockService, cfg), mockService
}

func sampleReport() *domain.Report {
	rankings := []domain.RankedUser{
		{
			ScoredUser: domain.ScoredUser{
				UserAggregate:  domain.UserAggregate{UserID: 101, GamesPlayed: 60, DepositTotal: 14000},
				DepositPoints:  140,
				GameplayPoints: 12,
				TotalPoints:    167,
			},
			Rank: 1,
		},
		{
			ScoredUser: domain.ScoredUser{
				UserAggregate:  domain.UserAggregate{UserID: 104, GamesPlayed: 55, DepositTotal: 10000},
				DepositPoints:  100,
				GameplayPoints: 11,
				TotalPoints:    136,
			},
			Rank: 2,
		},
	}
	return &domain.Report{
		RunID:         "run-1",
		Window:        domain.Window{Label: "October 2022"},
		BonusPool:     50000,
		Players:       2,
		AveragePoints: 151.5,
		TopPoints:     167,
		Rankings:      rankings,
		Allocations: []domain.Allocation{
			{UserID: 101, Rank: 1, TotalPoints: 167, Proportional: 27557, Tiered: 1500, Hybrid: 27000},
			{UserID: 104, Rank: 2, TotalPoints: 136, Proportional: 22443, Tiered: 1500, Hybrid: 23000},
		},
		GeneratedAt: time.Date(2022, 11, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRun(t *testing.T) {
	handler, mockService := newHandler(t)

	var captured domain.AnalysisOptions
	mockService.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, opts domain.AnalysisOptions) (*domain.Report, error) {
			captured = opts
			return sampleReport(), nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(`{"month":"October 2022"}`))
	rec := httptest.NewRecorder()
	handler.Run(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Omitted fields fall back to configured and formula defaults.
	assert.Equal(t, 50000.0, captured.BonusPool)
	assert.Equal(t, 50, captured.TopSize)
	assert.Equal(t, 0.01, captured.Params.DepositMultiplier)
	assert.Equal(t, 0.2, captured.Params.GameplayMultiplier)

	var body dto.AnalysisResponseDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "run-1", body.RunID)
	assert.Equal(t, 2, body.Players)
	assert.Len(t, body.Rankings, 2)
	assert.Len(t, body.Allocations, 2)
	assert.Len(t, body.Breakdown, 2, "breakdown is capped at the ranked population")
	assert.InDelta(t, 140.0/167.0*100, body.Breakdown[0].DepositPct, 1e-9)
}

func TestRunParamOverrides(t *testing.T) {
	handler, mockService := newHandler(t)

	var captured domain.AnalysisOptions
	mockService.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, opts domain.AnalysisOptions) (*domain.Report, error) {
			captured = opts
			return sampleReport(), nil
		})

	payload := `{"month":"October 2022","bonus_pool":80000,"params":{"deposit_multiplier":0.05,"deposit_cap":100}}`
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Run(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 80000.0, captured.BonusPool)
	assert.Equal(t, 0.05, captured.Params.DepositMultiplier)
	assert.Equal(t, 100.0, captured.Params.DepositCap)
	assert.Equal(t, 0.005, captured.Params.WithdrawalMultiplier, "unset params keep defaults")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		prepareMock    func(m *MockService)
		expectedStatus int
	}{
		{
			name:           "Invalid request body",
			payload:        `{month}`,
			prepareMock:    func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing month",
			payload:        `{}`,
			prepareMock:    func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid bonus pool",
			payload:        `{"month":"October 2022","bonus_pool":-5}`,
			prepareMock:    func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Unrecognized month",
			payload: `{"month":"Smarch 2022"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, analysisservice.ErrInvalidMonth)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Tables not loaded",
			payload: `{"month":"October 2022"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, analysisservice.ErrDatasetsNotLoaded)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "No qualifying users",
			payload: `{"month":"October 2022"}`,
			prepareMock: func(m *MockService) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, analysisservice.ErrEmptyInput)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newHandler(t)
			tt.prepareMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			handler.Run(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestExportRankings(t *testing.T) {
	handler, mockService := newHandler(t)
	mockService.EXPECT().Run(gomock.Any(), gomock.Any()).Return(sampleReport(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/analysis/rankings/export", strings.NewReader(`{"month":"October 2022"}`))
	rec := httptest.NewRecorder()
	handler.ExportRankings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "loyalty_rankings_October_2022.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 3, "header plus one line per ranked user")
	assert.True(t, strings.HasPrefix(lines[0], "Rank,User Id,Total Points"))
	assert.True(t, strings.HasPrefix(lines[1], "1,101,167"))
}

func TestExportAllocations(t *testing.T) {
	handler, mockService := newHandler(t)
	mockService.EXPECT().Run(gomock.Any(), gomock.Any()).Return(sampleReport(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/analysis/allocations/export", strings.NewReader(`{"month":"October 2022"}`))
	rec := httptest.NewRecorder()
	handler.ExportAllocations(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bonus_allocation_October_2022.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Rank,User Id,Total Points,Proportional,Tiered,Hybrid", lines[0])
}
