package domain

import "time"

type TableKind string

const (
	TableDeposits    TableKind = "deposits"
	TableWithdrawals TableKind = "withdrawals"
	TableGameplay    TableKind = "gameplay"
)

// MeasureColumn returns the kind-specific measure column expected in the raw CSV.
func (k TableKind) MeasureColumn() string {
	if k == TableGameplay {
		return "Games Played"
	}
	return "Amount"
}

func (k TableKind) Valid() bool {
	switch k {
	case TableDeposits, TableWithdrawals, TableGameplay:
		return true
	}
	return false
}

// ActivityRow is one normalized record from any of the three activity tables.
// Amount is set for deposit/withdrawal rows, GamesPlayed for gameplay rows.
type ActivityRow struct {
	UserID      int
	Timestamp   time.Time
	Amount      float64
	GamesPlayed int
}

// NormalizedTable is an activity table after validation. Every row carries a
// valid user ID, a parsed timestamp and the kind's measure. Tables are
// immutable once stored and replaced wholesale on re-import.
type NormalizedTable struct {
	Kind          TableKind
	Rows          []ActivityRow
	InvalidDates  int
	InvalidValues int
}

// Window is an inclusive analysis date range resolved from a named month.
type Window struct {
	Label string
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ScoringParams are the formula knobs. DepositCap of 0 means uncapped.
type ScoringParams struct {
	DepositMultiplier    float64
	WithdrawalMultiplier float64
	FrequencyMultiplier  float64
	GameplayMultiplier   float64
	DailyBonusRate       float64
	DepositCap           float64
}

// UserAggregate is a per-user, per-window activity summary. Computed fresh on
// every run and discarded after scoring.
type UserAggregate struct {
	UserID          int
	DepositTotal    float64
	WithdrawalTotal float64
	DepositCount    int
	WithdrawalCount int
	GamesPlayed     int
	DistinctDays    int
}

// HasActivity reports whether the user had at least one qualifying row inside
// the window. Users without any are excluded from ranking.
func (a UserAggregate) HasActivity() bool {
	return a.DepositCount > 0 || a.WithdrawalCount > 0 || a.DistinctDays > 0
}

type ScoredUser struct {
	UserAggregate
	DepositPoints    float64
	WithdrawalPoints float64
	FrequencyPoints  float64
	GameplayPoints   float64
	DailyBonusPoints float64
	TotalPoints      float64
}

type RankedUser struct {
	ScoredUser
	Rank int
}

// Allocation holds the three independent bonus amounts for one top-K user.
type Allocation struct {
	UserID       int
	Rank         int
	TotalPoints  float64
	Proportional float64
	Tiered       float64
	Hybrid       float64
}

type AnalysisOptions struct {
	Month     string
	BonusPool float64
	Params    ScoringParams
	TopSize   int
}

// Report is the result of one analysis run.
type Report struct {
	RunID         string
	Window        Window
	Params        ScoringParams
	BonusPool     float64
	Players       int
	AveragePoints float64
	TopPoints     float64
	Rankings      []RankedUser
	Allocations   []Allocation
	GeneratedAt   time.Time
}
