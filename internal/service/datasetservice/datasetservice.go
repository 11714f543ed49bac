package datasetservice

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/arcadia-gaming/loyaltyrank/internal/loyalty"
	"github.com/arcadia-gaming/loyaltyrank/internal/metrics"
	"go.uber.org/zap"
)

const (
	userIDColumn   = "User Id"
	datetimeColumn = "Datetime"
)

type Repo interface {
	Save(ctx context.Context, table domain.NormalizedTable) error
	Get(ctx context.Context, kind domain.TableKind) (*domain.NormalizedTable, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// MissingColumnError reports a structurally invalid table: a required column
// is absent. Processing of that table does not proceed.
type MissingColumnError struct {
	Table  domain.TableKind
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s data must contain a %q column", e.Table, e.Column)
}

type ImportSummary struct {
	Kind          domain.TableKind
	Rows          int
	InvalidDates  int
	InvalidValues int
}

type TableStatus struct {
	Kind          domain.TableKind
	Loaded        bool
	Rows          int
	InvalidDates  int
	InvalidValues int
}

// ImportCSV parses, validates and stores one activity table. The header must
// carry the "User Id" and "Datetime" columns plus the kind's measure column.
// Rows whose timestamp does not parse as DD-MM-YYYY HH:MM are dropped and
// counted as invalid dates; rows with non-numeric IDs or measures are dropped
// and counted as invalid values. Both counts are surfaced as a warning, not
// an error.
func (s *Service) ImportCSV(ctx context.Context, kind domain.TableKind, r io.Reader) (*ImportSummary, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown table kind: %s", kind)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", kind, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{datetimeColumn, userIDColumn, kind.MeasureColumn()} {
		if _, ok := columns[required]; !ok {
			return nil, &MissingColumnError{Table: kind, Column: required}
		}
	}

	table := domain.NormalizedTable{Kind: kind}
	userIdx := columns[userIDColumn]
	timeIdx := columns[datetimeColumn]
	measureIdx := columns[kind.MeasureColumn()]

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				table.InvalidValues++
				continue
			}
			return nil, fmt.Errorf("failed to read %s data: %w", kind, err)
		}

		row, rowErr := parseRow(kind, record, userIdx, timeIdx, measureIdx)
		switch {
		case errors.Is(rowErr, errInvalidDate):
			table.InvalidDates++
		case rowErr != nil:
			table.InvalidValues++
		default:
			table.Rows = append(table.Rows, row)
		}
	}

	if table.InvalidDates > 0 {
		zap.L().Warn("removed rows with invalid dates",
			zap.String("table", string(kind)),
			zap.Int("count", table.InvalidDates))
	}
	if table.InvalidValues > 0 {
		zap.L().Warn("removed rows with invalid values",
			zap.String("table", string(kind)),
			zap.Int("count", table.InvalidValues))
	}
	metrics.RowsIngested.WithLabelValues(string(kind)).Add(float64(len(table.Rows)))
	metrics.RowsDropped.WithLabelValues(string(kind), "invalid_date").Add(float64(table.InvalidDates))
	metrics.RowsDropped.WithLabelValues(string(kind), "invalid_value").Add(float64(table.InvalidValues))

	if err := s.repo.Save(ctx, table); err != nil {
		zap.L().Error("failed to store table", zap.String("table", string(kind)), zap.Error(err))
		return nil, err
	}

	return &ImportSummary{
		Kind:          kind,
		Rows:          len(table.Rows),
		InvalidDates:  table.InvalidDates,
		InvalidValues: table.InvalidValues,
	}, nil
}

var errInvalidDate = errors.New("invalid date")

func parseRow(kind domain.TableKind, record []string, userIdx, timeIdx, measureIdx int) (domain.ActivityRow, error) {
	userID, err := strconv.Atoi(strings.TrimSpace(record[userIdx]))
	if err != nil {
		return domain.ActivityRow{}, fmt.Errorf("invalid user id: %w", err)
	}

	timestamp, err := time.Parse(loyalty.TimestampLayout, strings.TrimSpace(record[timeIdx]))
	if err != nil {
		return domain.ActivityRow{}, errInvalidDate
	}

	row := domain.ActivityRow{UserID: userID, Timestamp: timestamp}
	measure := strings.TrimSpace(record[measureIdx])
	if kind == domain.TableGameplay {
		games, err := strconv.Atoi(measure)
		if err != nil {
			return domain.ActivityRow{}, fmt.Errorf("invalid games played: %w", err)
		}
		row.GamesPlayed = games
	} else {
		amount, err := strconv.ParseFloat(measure, 64)
		if err != nil {
			return domain.ActivityRow{}, fmt.Errorf("invalid amount: %w", err)
		}
		row.Amount = amount
	}
	return row, nil
}

// Status reports per-table row and drop counts for display.
func (s *Service) Status(ctx context.Context) ([]TableStatus, error) {
	kinds := []domain.TableKind{domain.TableDeposits, domain.TableWithdrawals, domain.TableGameplay}
	statuses := make([]TableStatus, 0, len(kinds))
	for _, kind := range kinds {
		table, err := s.repo.Get(ctx, kind)
		if err != nil {
			zap.L().Error("failed to fetch table", zap.String("table", string(kind)), zap.Error(err))
			return nil, err
		}
		status := TableStatus{Kind: kind}
		if table != nil {
			status.Loaded = true
			status.Rows = len(table.Rows)
			status.InvalidDates = table.InvalidDates
			status.InvalidValues = table.InvalidValues
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
