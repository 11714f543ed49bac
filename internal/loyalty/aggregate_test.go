package loyalty

import (
	"testing"
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(TimestampLayout, value)
	assert.NoError(t, err)
	return parsed
}

func TestGroupByUser(t *testing.T) {
	rows := []domain.ActivityRow{
		{UserID: 101, Amount: 5000},
		{UserID: 102, Amount: 7000},
		{UserID: 101, Amount: 3000},
	}

	grouped := GroupByUser(rows)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[101], 2)
	assert.Len(t, grouped[102], 1)
}

func TestAggregate(t *testing.T) {
	window, err := ResolveMonth("October 2022")
	assert.NoError(t, err)

	deposits := []domain.ActivityRow{
		{UserID: 101, Timestamp: ts(t, "01-10-2022 10:00"), Amount: 5000},
		{UserID: 101, Timestamp: ts(t, "05-10-2022 15:30"), Amount: 3000},
		{UserID: 101, Timestamp: ts(t, "05-11-2022 15:30"), Amount: 9999}, // outside window
	}
	withdrawals := []domain.ActivityRow{
		{UserID: 101, Timestamp: ts(t, "08-10-2022 11:00"), Amount: 2000},
	}
	gameplay := []domain.ActivityRow{
		{UserID: 101, Timestamp: ts(t, "01-10-2022 10:30"), GamesPlayed: 15},
		{UserID: 101, Timestamp: ts(t, "01-10-2022 21:00"), GamesPlayed: 5},
		{UserID: 101, Timestamp: ts(t, "02-10-2022 11:00"), GamesPlayed: 20},
	}

	agg := Aggregate(101, deposits, withdrawals, gameplay, window)

	assert.Equal(t, 101, agg.UserID)
	assert.Equal(t, 8000.0, agg.DepositTotal)
	assert.Equal(t, 2, agg.DepositCount)
	assert.Equal(t, 2000.0, agg.WithdrawalTotal)
	assert.Equal(t, 1, agg.WithdrawalCount)
	assert.Equal(t, 40, agg.GamesPlayed)
	assert.Equal(t, 2, agg.DistinctDays, "two sessions on the same calendar day count once")
	assert.True(t, agg.HasActivity())
}

func TestAggregateWindowBoundsInclusive(t *testing.T) {
	window, err := ResolveMonth("October 2022")
	assert.NoError(t, err)

	deposits := []domain.ActivityRow{
		{UserID: 7, Timestamp: window.Start, Amount: 100},
		{UserID: 7, Timestamp: window.End, Amount: 200},
	}

	agg := Aggregate(7, deposits, nil, nil, window)

	assert.Equal(t, 300.0, agg.DepositTotal)
	assert.Equal(t, 2, agg.DepositCount)
}

func TestAggregateNoMatchingRows(t *testing.T) {
	window, err := ResolveMonth("November 2022")
	assert.NoError(t, err)

	gameplay := []domain.ActivityRow{
		{UserID: 5, Timestamp: ts(t, "01-10-2022 10:30"), GamesPlayed: 15},
	}

	agg := Aggregate(5, nil, nil, gameplay, window)

	assert.Equal(t, domain.UserAggregate{UserID: 5}, agg)
	assert.False(t, agg.HasActivity())
}
