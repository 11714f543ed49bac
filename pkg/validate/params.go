package validate

import (
	"errors"
	"math"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
)

var (
	ErrMonthRequired     = errors.New("analysis month is required")
	ErrInvalidBonusPool  = errors.New("bonus pool must be a positive amount")
	ErrInvalidDepositCap = errors.New("deposit cap must be zero or positive")
	ErrInvalidDailyBonus = errors.New("daily bonus rate must be zero or positive")
	ErrInvalidMultiplier = errors.New("multipliers must be finite numbers")
	ErrInvalidTopSize    = errors.New("top subset size must be positive")
)

// AnalysisOptions checks an analysis request before it reaches the engine.
func AnalysisOptions(opts domain.AnalysisOptions) error {
	if opts.Month == "" {
		return ErrMonthRequired
	}
	if opts.BonusPool <= 0 || !finite(opts.BonusPool) {
		return ErrInvalidBonusPool
	}
	if opts.TopSize <= 0 {
		return ErrInvalidTopSize
	}

	p := opts.Params
	for _, v := range []float64{p.DepositMultiplier, p.WithdrawalMultiplier, p.FrequencyMultiplier, p.GameplayMultiplier, p.DailyBonusRate, p.DepositCap} {
		if !finite(v) {
			return ErrInvalidMultiplier
		}
	}
	if p.DepositCap < 0 {
		return ErrInvalidDepositCap
	}
	if p.DailyBonusRate < 0 {
		return ErrInvalidDailyBonus
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
