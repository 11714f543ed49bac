package loyalty

import (
	"sort"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
)

// Rank orders scored users descending by total points, then by games played,
// then by ascending user ID so equal rows still sort deterministically, and
// assigns dense positional ranks 1..N. Equal-key users get distinct
// consecutive ranks rather than a shared rank. The returned order is the
// canonical order for every downstream consumer.
func Rank(scored []domain.ScoredUser) []domain.RankedUser {
	sorted := make([]domain.ScoredUser, len(scored))
	copy(sorted, scored)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		if sorted[i].GamesPlayed != sorted[j].GamesPlayed {
			return sorted[i].GamesPlayed > sorted[j].GamesPlayed
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	ranked := make([]domain.RankedUser, len(sorted))
	for i, user := range sorted {
		ranked[i] = domain.RankedUser{ScoredUser: user, Rank: i + 1}
	}
	return ranked
}
