package loyalty

import (
	"testing"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rankedTop(n int) []domain.RankedUser {
	top := make([]domain.RankedUser, n)
	for i := range top {
		top[i] = domain.RankedUser{
			ScoredUser: domain.ScoredUser{
				UserAggregate: domain.UserAggregate{
					UserID:       100 + i,
					GamesPlayed:  10 + i,
					DepositTotal: float64(1000 * (i + 1)),
				},
				TotalPoints: float64(n - i),
			},
			Rank: i + 1,
		}
	}
	return top
}

func TestAllocateProportionalSumsToPool(t *testing.T) {
	top := rankedTop(50)
	pool := 50000.0

	allocations := Allocate(top, 50, pool)

	var sum float64
	for _, a := range allocations {
		sum += a.Proportional
	}
	assert.InDelta(t, pool, sum, 1e-6)
}

func TestAllocateProportionalZeroPointsEqualSplit(t *testing.T) {
	top := rankedTop(4)
	for i := range top {
		top[i].TotalPoints = 0
	}

	allocations := Allocate(top, 50, 1000)

	for _, a := range allocations {
		assert.InDelta(t, 250.0, a.Proportional, 1e-9)
	}
}

func TestAllocateTiered(t *testing.T) {
	top := rankedTop(50)
	pool := 50000.0

	allocations := Allocate(top, 50, pool)

	tests := []struct {
		name     string
		rank     int
		expected float64
	}{
		{"Rank 1 in first band", 1, 0.3 * pool / 10},
		{"Rank 10 in first band", 10, 0.3 * pool / 10},
		{"Rank 11 in second band", 11, 0.4 * pool / 20},
		{"Rank 30 in second band", 30, 0.4 * pool / 20},
		{"Rank 31 in tail band", 31, 0.3 * pool / 20},
		{"Rank 50 in tail band", 50, 0.3 * pool / 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, allocations[tt.rank-1].Tiered, 1e-9)
		})
	}

	var sum float64
	for _, a := range allocations {
		sum += a.Tiered
	}
	assert.InDelta(t, pool, sum, 1e-6, "tiered sums to the pool when all K ranks are filled")
}

func TestAllocateTieredSameBandSameAmount(t *testing.T) {
	// Amounts depend on band membership only, not point magnitude.
	top := rankedTop(50)
	top[3].TotalPoints = 9999

	allocations := Allocate(top, 50, 50000)

	assert.Equal(t, allocations[0].Tiered, allocations[3].Tiered)
	assert.Equal(t, allocations[10].Tiered, allocations[29].Tiered)
}

func TestAllocateHybridSumsToPool(t *testing.T) {
	top := rankedTop(50)
	pool := 50000.0

	allocations := Allocate(top, 50, pool)

	var sum float64
	for _, a := range allocations {
		sum += a.Hybrid
	}
	assert.InDelta(t, pool, sum, 1e-6)
}

func TestAllocateHybridZeroDenominatorPerTerm(t *testing.T) {
	// No games played by anyone: the games term degenerates to an equal share
	// while points and deposits still differentiate.
	top := rankedTop(2)
	top[0].GamesPlayed = 0
	top[1].GamesPlayed = 0
	top[0].TotalPoints = 3
	top[1].TotalPoints = 1
	top[0].DepositTotal = 0
	top[1].DepositTotal = 0
	pool := 1000.0

	allocations := Allocate(top, 50, pool)

	expectedFirst := (0.5*0.75 + 0.3*0.5 + 0.2*0.5) * pool
	expectedSecond := (0.5*0.25 + 0.3*0.5 + 0.2*0.5) * pool
	assert.InDelta(t, expectedFirst, allocations[0].Hybrid, 1e-9)
	assert.InDelta(t, expectedSecond, allocations[1].Hybrid, 1e-9)
	assert.InDelta(t, pool, allocations[0].Hybrid+allocations[1].Hybrid, 1e-9)
}

func TestAllocateFewerUsersThanTopSize(t *testing.T) {
	top := rankedTop(12)
	pool := 50000.0

	allocations := Allocate(top, 50, pool)

	assert.Len(t, allocations, 12)
	assert.InDelta(t, 0.3*pool/10, allocations[0].Tiered, 1e-9)
	assert.InDelta(t, 0.4*pool/20, allocations[11].Tiered, 1e-9,
		"band amounts stay fixed when the subset is short")
}

func TestAllocateEmptySubset(t *testing.T) {
	assert.Nil(t, Allocate(nil, 50, 50000))
}
