package loyalty

import "github.com/arcadia-gaming/loyaltyrank/internal/domain"

// Score maps an aggregate to its five additive point components. Pure function
// of its inputs. A DepositCap of 0 means uncapped; a positive cap clamps the
// deposit component only. The frequency component never goes below zero, so
// withdrawal-heavy behavior is not rewarded.
func Score(agg domain.UserAggregate, p domain.ScoringParams) domain.ScoredUser {
	depositPoints := p.DepositMultiplier * agg.DepositTotal
	if p.DepositCap > 0 && depositPoints > p.DepositCap {
		depositPoints = p.DepositCap
	}

	netDeposits := agg.DepositCount - agg.WithdrawalCount
	if netDeposits < 0 {
		netDeposits = 0
	}

	scored := domain.ScoredUser{
		UserAggregate:    agg,
		DepositPoints:    depositPoints,
		WithdrawalPoints: p.WithdrawalMultiplier * agg.WithdrawalTotal,
		FrequencyPoints:  p.FrequencyMultiplier * float64(netDeposits),
		GameplayPoints:   p.GameplayMultiplier * float64(agg.GamesPlayed),
		DailyBonusPoints: p.DailyBonusRate * float64(agg.DistinctDays),
	}
	scored.TotalPoints = scored.DepositPoints + scored.WithdrawalPoints +
		scored.FrequencyPoints + scored.GameplayPoints + scored.DailyBonusPoints

	return scored
}
