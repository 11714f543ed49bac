package repo

import (
	"testing"

	datasetrepo "github.com/arcadia-gaming/loyaltyrank/internal/repo/dataset-repo"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	repos := New()

	assert.NotNil(t, repos.Datasets)
	assert.IsType(t, &datasetrepo.Repository{}, repos.Datasets)
}
