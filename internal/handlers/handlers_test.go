package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/arcadia-gaming/loyaltyrank/docs"
	"github.com/arcadia-gaming/loyaltyrank/internal/config"
	"github.com/arcadia-gaming/loyaltyrank/internal/handlers/analysis"
	"github.com/arcadia-gaming/loyaltyrank/internal/handlers/datasets"
	"github.com/arcadia-gaming/loyaltyrank/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		DatasetService:  datasets.NewMockService(ctrl),
		AnalysisService: analysis.NewMockService(ctrl),
	}

	h := New(services, &config.Config{BonusTopSize: 50, BreakdownSize: 10})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasetHandler := NewMockDatasetHandler(ctrl)
	mockAnalysisHandler := NewMockAnalysisHandler(ctrl)

	mockDatasetHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	mockDatasetHandler.EXPECT().LoadSample(gomock.Any(), gomock.Any()).AnyTimes()
	mockDatasetHandler.EXPECT().Upload(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnalysisHandler.EXPECT().Run(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnalysisHandler.EXPECT().ExportRankings(gomock.Any(), gomock.Any()).AnyTimes()
	mockAnalysisHandler.EXPECT().ExportAllocations(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		DatasetHandler:  mockDatasetHandler,
		AnalysisHandler: mockAnalysisHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/datasets", http.StatusOK},
		{"POST", "/api/datasets/sample", http.StatusOK},
		{"POST", "/api/datasets/deposits", http.StatusOK},
		{"POST", "/api/analysis", http.StatusOK},
		{"POST", "/api/analysis/rankings/export", http.StatusOK},
		{"POST", "/api/analysis/allocations/export", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
