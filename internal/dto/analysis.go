package dto

import "time"

type ScoringParamsDTO struct {
	DepositMultiplier    *float64 `json:"deposit_multiplier,omitempty" example:"0.01"`
	WithdrawalMultiplier *float64 `json:"withdrawal_multiplier,omitempty" example:"0.005"`
	FrequencyMultiplier  *float64 `json:"frequency_multiplier,omitempty" example:"0.001"`
	GameplayMultiplier   *float64 `json:"gameplay_multiplier,omitempty" example:"0.2"`
	DailyBonusRate       *float64 `json:"daily_bonus_rate,omitempty" example:"5"`
	DepositCap           *float64 `json:"deposit_cap,omitempty" example:"0"`
}

type AnalysisRequestDTO struct {
	Month     string            `json:"month" example:"October 2022"`
	BonusPool *float64          `json:"bonus_pool,omitempty" example:"50000"`
	Params    *ScoringParamsDTO `json:"params,omitempty"`
}

type RankingDTO struct {
	Rank             int     `json:"rank" example:"1"`
	UserID           int     `json:"user_id" example:"101"`
	TotalPoints      float64 `json:"total_points" example:"167.0"`
	FromDeposits     float64 `json:"from_deposits" example:"140"`
	FromWithdrawals  float64 `json:"from_withdrawals" example:"15"`
	FromFrequency    float64 `json:"from_frequency" example:"0.001"`
	FromGames        float64 `json:"from_games" example:"12"`
	FromDailyBonus   float64 `json:"from_daily_bonus" example:"0"`
	TotalDeposits    float64 `json:"total_deposits" example:"14000"`
	TotalWithdrawals float64 `json:"total_withdrawals" example:"3000"`
	GamesPlayed      int     `json:"games_played" example:"60"`
	DistinctDays     int     `json:"distinct_days" example:"3"`
}

type BreakdownDTO struct {
	Rank           int     `json:"rank" example:"1"`
	UserID         int     `json:"user_id" example:"101"`
	TotalPoints    float64 `json:"total_points" example:"167.0"`
	FromDeposits   float64 `json:"from_deposits" example:"140"`
	FromGames      float64 `json:"from_games" example:"12"`
	FromDailyBonus float64 `json:"from_daily_bonus" example:"0"`
	DepositPct     float64 `json:"deposit_pct" example:"83.8"`
	GameplayPct    float64 `json:"gameplay_pct" example:"7.2"`
}

type AllocationDTO struct {
	Rank         int     `json:"rank" example:"1"`
	UserID       int     `json:"user_id" example:"101"`
	TotalPoints  float64 `json:"total_points" example:"167.0"`
	Proportional float64 `json:"proportional" example:"10823.45"`
	Tiered       float64 `json:"tiered" example:"1500"`
	Hybrid       float64 `json:"hybrid" example:"11240.11"`
}

type AnalysisResponseDTO struct {
	RunID         string          `json:"run_id" example:"0b15f1f4-9a3a-4f6e-bb54-3f1a3e2c9d77"`
	Month         string          `json:"month" example:"October 2022"`
	BonusPool     float64         `json:"bonus_pool" example:"50000"`
	Players       int             `json:"players" example:"7"`
	AveragePoints float64         `json:"average_points" example:"121.4"`
	TopPoints     float64         `json:"top_points" example:"167.0"`
	Rankings      []RankingDTO    `json:"rankings"`
	Breakdown     []BreakdownDTO  `json:"breakdown"`
	Allocations   []AllocationDTO `json:"allocations"`
	GeneratedAt   time.Time       `json:"generated_at" example:"2022-11-01T09:00:00Z"`
}
