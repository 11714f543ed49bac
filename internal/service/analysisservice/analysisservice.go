package analysisservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/arcadia-gaming/loyaltyrank/internal/loyalty"
	"github.com/arcadia-gaming/loyaltyrank/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
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

var (
	ErrInvalidMonth      = errors.New("invalid analysis month")
	ErrDatasetsNotLoaded = errors.New("all three activity tables must be loaded before analysis")
	ErrEmptyInput        = errors.New("no users with qualifying activity in the analysis window")
)

// Run executes one full analysis: window resolution, per-user aggregation and
// scoring over the union of users seen in any table, ranking, and bonus
// allocation over the top subset. Each call reads a consistent copy of the
// stored tables and shares no state with other calls.
func (s *Service) Run(ctx context.Context, opts domain.AnalysisOptions) (*domain.Report, error) {
	started := time.Now()

	window, err := loyalty.ResolveMonth(opts.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}

	deposits, err := s.table(ctx, domain.TableDeposits)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.table(ctx, domain.TableWithdrawals)
	if err != nil {
		return nil, err
	}
	gameplay, err := s.table(ctx, domain.TableGameplay)
	if err != nil {
		return nil, err
	}

	depositsByUser := loyalty.GroupByUser(deposits.Rows)
	withdrawalsByUser := loyalty.GroupByUser(withdrawals.Rows)
	gameplayByUser := loyalty.GroupByUser(gameplay.Rows)

	users := make(map[int]struct{})
	for _, grouped := range []map[int][]domain.ActivityRow{depositsByUser, withdrawalsByUser, gameplayByUser} {
		for userID := range grouped {
			users[userID] = struct{}{}
		}
	}

	scored := make([]domain.ScoredUser, 0, len(users))
	for userID := range users {
		agg := loyalty.Aggregate(userID, depositsByUser[userID], withdrawalsByUser[userID], gameplayByUser[userID], window)
		if !agg.HasActivity() {
			continue
		}
		scored = append(scored, loyalty.Score(agg, opts.Params))
	}
	if len(scored) == 0 {
		zap.L().Warn("analysis produced no qualifying users", zap.String("month", opts.Month))
		return nil, ErrEmptyInput
	}

	ranked := loyalty.Rank(scored)

	topLen := opts.TopSize
	if topLen > len(ranked) {
		topLen = len(ranked)
	}
	allocations := loyalty.Allocate(ranked[:topLen], opts.TopSize, opts.BonusPool)

	var pointsSum float64
	for _, user := range ranked {
		pointsSum += user.TotalPoints
	}

	report := &domain.Report{
		RunID:         uuid.NewString(),
		Window:        window,
		Params:        opts.Params,
		BonusPool:     opts.BonusPool,
		Players:       len(ranked),
		AveragePoints: pointsSum / float64(len(ranked)),
		TopPoints:     ranked[0].TotalPoints,
		Rankings:      ranked,
		Allocations:   allocations,
		GeneratedAt:   time.Now(),
	}

	metrics.AnalysisRuns.Inc()
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	zap.L().Info("analysis run completed",
		zap.String("run_id", report.RunID),
		zap.String("month", opts.Month),
		zap.Int("players", report.Players))

	return report, nil
}

func (s *Service) table(ctx context.Context, kind domain.TableKind) (*domain.NormalizedTable, error) {
	table, err := s.repo.Get(ctx, kind)
	if err != nil {
		zap.L().Error("failed to fetch table", zap.String("table", string(kind)), zap.Error(err))
		return nil, err
	}
	if table == nil {
		return nil, ErrDatasetsNotLoaded
	}
	return table, nil
}
