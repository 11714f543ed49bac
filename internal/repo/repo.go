package repo

import (
	datasetrepo "github.com/arcadia-gaming/loyaltyrank/internal/repo/dataset-repo"
)

type Repositories struct {
	Datasets *datasetrepo.Repository
}

func New() *Repositories {
	return &Repositories{
		Datasets: datasetrepo.New(),
	}
}
