package loyalty

import "github.com/arcadia-gaming/loyaltyrank/internal/domain"

// Tier band boundaries and pool shares. Bands are fixed design constants and
// do not move with the configured top-subset size; only the tail band's head
// count depends on it.
const (
	TierOneEnd = 10
	TierTwoEnd = 30

	TierOneShare   = 0.30
	TierTwoShare   = 0.40
	TierThreeShare = 0.30
)

// Hybrid blend weights over the three normalized shares. Must sum to 1.
const (
	PointsWeight   = 0.5
	GamesWeight    = 0.3
	DepositsWeight = 0.2
)

// Allocate computes the three independent bonus distributions over the given
// top subset. topSize is the configured subset size K; the slice may be
// shorter when fewer users ranked. The methods are comparison outputs, not a
// selection among them.
//
// Zero-denominator policy: when a share's denominator sums to zero over the
// subset, that share degenerates to an equal split across the subset. Applied
// to Proportional as a whole and to each Hybrid term independently.
func Allocate(top []domain.RankedUser, topSize int, pool float64) []domain.Allocation {
	if len(top) == 0 {
		return nil
	}

	var pointsSum, gamesSum, depositsSum float64
	for _, user := range top {
		pointsSum += user.TotalPoints
		gamesSum += float64(user.GamesPlayed)
		depositsSum += user.DepositTotal
	}

	allocations := make([]domain.Allocation, len(top))
	for i, user := range top {
		pointsShare := share(user.TotalPoints, pointsSum, len(top))
		allocations[i] = domain.Allocation{
			UserID:       user.UserID,
			Rank:         user.Rank,
			TotalPoints:  user.TotalPoints,
			Proportional: pointsShare * pool,
			Tiered:       tieredAmount(user.Rank, topSize, pool),
			Hybrid: (PointsWeight*pointsShare +
				GamesWeight*share(float64(user.GamesPlayed), gamesSum, len(top)) +
				DepositsWeight*share(user.DepositTotal, depositsSum, len(top))) * pool,
		}
	}
	return allocations
}

// share is value/sum with an equal-split fallback when the sum is zero.
func share(value, sum float64, n int) float64 {
	if sum == 0 {
		return 1 / float64(n)
	}
	return value / sum
}

// tieredAmount is the per-head amount for the rank's band: ranks 1..10 split
// 30% of the pool, 11..30 split 40%, 31..K split the remaining 30%. The tail
// band is empty (never reached) when K <= 30.
func tieredAmount(rank, topSize int, pool float64) float64 {
	switch {
	case rank <= TierOneEnd:
		return TierOneShare * pool / TierOneEnd
	case rank <= TierTwoEnd:
		return TierTwoShare * pool / (TierTwoEnd - TierOneEnd)
	default:
		return TierThreeShare * pool / float64(topSize-TierTwoEnd)
	}
}
