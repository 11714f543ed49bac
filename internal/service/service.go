package service

import (
	"github.com/arcadia-gaming/loyaltyrank/internal/handlers/analysis"
	"github.com/arcadia-gaming/loyaltyrank/internal/handlers/datasets"

	"github.com/arcadia-gaming/loyaltyrank/internal/repo"
	analysisservice "github.com/arcadia-gaming/loyaltyrank/internal/service/analysisservice"
	datasetservice "github.com/arcadia-gaming/loyaltyrank/internal/service/datasetservice"
)

type Services struct {
	DatasetService  datasets.Service
	AnalysisService analysis.Service
}

func New(repo *repo.Repositories) *Services {
	datasetService := datasetservice.New(repo.Datasets)
	analysisService := analysisservice.New(repo.Datasets)

	return &Services{
		DatasetService:  datasetService,
		AnalysisService: analysisService,
	}
}
