package loyalty

import (
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
)

// GroupByUser indexes a table's rows by user ID so per-user aggregation is a
// map lookup instead of a full scan per user.
func GroupByUser(rows []domain.ActivityRow) map[int][]domain.ActivityRow {
	grouped := make(map[int][]domain.ActivityRow, len(rows))
	for _, row := range rows {
		grouped[row.UserID] = append(grouped[row.UserID], row)
	}
	return grouped
}

// Aggregate reduces one user's activity rows inside the window (both bounds
// inclusive) to summary statistics. A user with no matching rows in a table
// contributes zeros for that table's fields.
func Aggregate(userID int, deposits, withdrawals, gameplay []domain.ActivityRow, w domain.Window) domain.UserAggregate {
	agg := domain.UserAggregate{UserID: userID}

	for _, row := range deposits {
		if !w.Contains(row.Timestamp) {
			continue
		}
		agg.DepositTotal += row.Amount
		agg.DepositCount++
	}

	for _, row := range withdrawals {
		if !w.Contains(row.Timestamp) {
			continue
		}
		agg.WithdrawalTotal += row.Amount
		agg.WithdrawalCount++
	}

	days := make(map[time.Time]struct{})
	for _, row := range gameplay {
		if !w.Contains(row.Timestamp) {
			continue
		}
		agg.GamesPlayed += row.GamesPlayed
		y, m, d := row.Timestamp.Date()
		days[time.Date(y, m, d, 0, 0, 0, 0, row.Timestamp.Location())] = struct{}{}
	}
	agg.DistinctDays = len(days)

	return agg
}
