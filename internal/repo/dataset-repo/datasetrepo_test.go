package datasetrepo

import (
	"context"
	"testing"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSaveAndGet(t *testing.T) {
	repo := New()
	ctx := context.Background()

	table, err := repo.Get(ctx, domain.TableDeposits)
	assert.NoError(t, err)
	assert.Nil(t, table, "nothing loaded yet")

	saved := domain.NormalizedTable{
		Kind: domain.TableDeposits,
		Rows: []domain.ActivityRow{{UserID: 101, Amount: 5000}},
	}
	assert.NoError(t, repo.Save(ctx, saved))

	table, err = repo.Get(ctx, domain.TableDeposits)
	assert.NoError(t, err)
	assert.Equal(t, saved, *table)
}

func TestSaveReplacesTable(t *testing.T) {
	repo := New()
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, domain.NormalizedTable{
		Kind: domain.TableGameplay,
		Rows: []domain.ActivityRow{{UserID: 1, GamesPlayed: 5}},
	}))
	assert.NoError(t, repo.Save(ctx, domain.NormalizedTable{
		Kind: domain.TableGameplay,
		Rows: []domain.ActivityRow{{UserID: 2, GamesPlayed: 7}, {UserID: 3, GamesPlayed: 1}},
	}))

	table, err := repo.Get(ctx, domain.TableGameplay)
	assert.NoError(t, err)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, 2, table.Rows[0].UserID)
}

func TestSaveUnknownKind(t *testing.T) {
	repo := New()

	err := repo.Save(context.Background(), domain.NormalizedTable{Kind: "bets"})
	assert.Error(t, err)
}
