package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/arcadia-gaming/loyaltyrank/internal/config"
	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/arcadia-gaming/loyaltyrank/internal/dto"
	"github.com/arcadia-gaming/loyaltyrank/internal/service/analysisservice"
	"github.com/arcadia-gaming/loyaltyrank/pkg/utils"
	"github.com/arcadia-gaming/loyaltyrank/pkg/validate"
)

type Service interface {
	Run(ctx context.Context, opts domain.AnalysisOptions) (*domain.Report, error)
}

// Default formula parameters, applied when a request omits them.
var defaultParams = domain.ScoringParams{
	DepositMultiplier:    0.01,
	WithdrawalMultiplier: 0.005,
	FrequencyMultiplier:  0.001,
	GameplayMultiplier:   0.2,
	DailyBonusRate:       0,
	DepositCap:           0,
}

type AnalysisHandler struct {
	analysisService Service
	cfg             *config.Config
}

func New(analysisService Service, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		cfg:             cfg,
	}
}

// Run godoc
//
//	@Summary		Run a loyalty analysis
//	@Description	Score and rank every user with activity in the selected month, and compute the three bonus allocations over the top subset.
//	@Tags			Analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AnalysisRequestDTO	true	"Analysis request"
//	@Success		200		{object}	dto.AnalysisResponseDTO	"Analysis report"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		409		{object}	utils.Response			"Tables not loaded or no qualifying users"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/analysis [post]
func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toResponse(report))
}

// ExportRankings godoc
//
//	@Summary		Export full rankings as CSV
//	@Description	Run the analysis and download the full monthly rankings as a CSV file.
//	@Tags			Analysis
//	@Accept			json
//	@Produce		text/csv
//	@Param			request	body	dto.AnalysisRequestDTO	true	"Analysis request"
//	@Success		200		{file}	file					"Rankings CSV"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		409		{object}	utils.Response		"Tables not loaded or no qualifying users"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/analysis/rankings/export [post]
func (h *AnalysisHandler) ExportRankings(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	records := [][]string{{
		"Rank", "User Id", "Total Points",
		"From Deposits", "From Withdrawals", "From Frequency", "From Games", "From Daily Bonus",
		"Total Deposits", "Total Withdrawals", "Games Played", "Distinct Days",
	}}
	for _, user := range report.Rankings {
		records = append(records, []string{
			strconv.Itoa(user.Rank),
			strconv.Itoa(user.UserID),
			formatAmount(user.TotalPoints),
			formatAmount(user.DepositPoints),
			formatAmount(user.WithdrawalPoints),
			formatAmount(user.FrequencyPoints),
			formatAmount(user.GameplayPoints),
			formatAmount(user.DailyBonusPoints),
			formatAmount(user.DepositTotal),
			formatAmount(user.WithdrawalTotal),
			strconv.Itoa(user.GamesPlayed),
			strconv.Itoa(user.DistinctDays),
		})
	}
	utils.RespondWithCSV(w, exportFilename("loyalty_rankings", report.Window.Label), records)
}

// ExportAllocations godoc
//
//	@Summary		Export bonus allocations as CSV
//	@Description	Run the analysis and download the top-subset bonus allocation comparison as a CSV file.
//	@Tags			Analysis
//	@Accept			json
//	@Produce		text/csv
//	@Param			request	body	dto.AnalysisRequestDTO	true	"Analysis request"
//	@Success		200		{file}	file					"Allocations CSV"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		409		{object}	utils.Response		"Tables not loaded or no qualifying users"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/analysis/allocations/export [post]
func (h *AnalysisHandler) ExportAllocations(w http.ResponseWriter, r *http.Request) {
	report, ok := h.runFromRequest(w, r)
	if !ok {
		return
	}

	records := [][]string{{"Rank", "User Id", "Total Points", "Proportional", "Tiered", "Hybrid"}}
	for _, a := range report.Allocations {
		records = append(records, []string{
			strconv.Itoa(a.Rank),
			strconv.Itoa(a.UserID),
			formatAmount(a.TotalPoints),
			formatAmount(a.Proportional),
			formatAmount(a.Tiered),
			formatAmount(a.Hybrid),
		})
	}
	utils.RespondWithCSV(w, exportFilename("bonus_allocation", report.Window.Label), records)
}

// runFromRequest decodes, validates and executes an analysis request, writing
// the error response itself when anything fails.
func (h *AnalysisHandler) runFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	var req dto.AnalysisRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	opts := h.toOptions(req)
	if err := validate.AnalysisOptions(opts); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.analysisService.Run(r.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, analysisservice.ErrInvalidMonth):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, analysisservice.ErrDatasetsNotLoaded),
			errors.Is(err, analysisservice.ErrEmptyInput):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}
	return report, true
}

func (h *AnalysisHandler) toOptions(req dto.AnalysisRequestDTO) domain.AnalysisOptions {
	opts := domain.AnalysisOptions{
		Month:     req.Month,
		BonusPool: h.cfg.BonusPool,
		Params:    defaultParams,
		TopSize:   h.cfg.BonusTopSize,
	}
	if req.BonusPool != nil {
		opts.BonusPool = *req.BonusPool
	}
	if req.Params != nil {
		applyOverride(&opts.Params.DepositMultiplier, req.Params.DepositMultiplier)
		applyOverride(&opts.Params.WithdrawalMultiplier, req.Params.WithdrawalMultiplier)
		applyOverride(&opts.Params.FrequencyMultiplier, req.Params.FrequencyMultiplier)
		applyOverride(&opts.Params.GameplayMultiplier, req.Params.GameplayMultiplier)
		applyOverride(&opts.Params.DailyBonusRate, req.Params.DailyBonusRate)
		applyOverride(&opts.Params.DepositCap, req.Params.DepositCap)
	}
	return opts
}

func applyOverride(target *float64, value *float64) {
	if value != nil {
		*target = *value
	}
}

func (h *AnalysisHandler) toResponse(report *domain.Report) dto.AnalysisResponseDTO {
	response := dto.AnalysisResponseDTO{
		RunID:         report.RunID,
		Month:         report.Window.Label,
		BonusPool:     report.BonusPool,
		Players:       report.Players,
		AveragePoints: report.AveragePoints,
		TopPoints:     report.TopPoints,
		Rankings:      make([]dto.RankingDTO, len(report.Rankings)),
		Allocations:   make([]dto.AllocationDTO, len(report.Allocations)),
		GeneratedAt:   report.GeneratedAt,
	}

	for i, user := range report.Rankings {
		response.Rankings[i] = dto.RankingDTO{
			Rank:             user.Rank,
			UserID:           user.UserID,
			TotalPoints:      user.TotalPoints,
			FromDeposits:     user.DepositPoints,
			FromWithdrawals:  user.WithdrawalPoints,
			FromFrequency:    user.FrequencyPoints,
			FromGames:        user.GameplayPoints,
			FromDailyBonus:   user.DailyBonusPoints,
			TotalDeposits:    user.DepositTotal,
			TotalWithdrawals: user.WithdrawalTotal,
			GamesPlayed:      user.GamesPlayed,
			DistinctDays:     user.DistinctDays,
		}
	}

	breakdownLen := h.cfg.BreakdownSize
	if breakdownLen > len(report.Rankings) {
		breakdownLen = len(report.Rankings)
	}
	response.Breakdown = make([]dto.BreakdownDTO, breakdownLen)
	for i := 0; i < breakdownLen; i++ {
		user := report.Rankings[i]
		breakdown := dto.BreakdownDTO{
			Rank:           user.Rank,
			UserID:         user.UserID,
			TotalPoints:    user.TotalPoints,
			FromDeposits:   user.DepositPoints,
			FromGames:      user.GameplayPoints,
			FromDailyBonus: user.DailyBonusPoints,
		}
		if user.TotalPoints != 0 {
			breakdown.DepositPct = user.DepositPoints / user.TotalPoints * 100
			breakdown.GameplayPct = user.GameplayPoints / user.TotalPoints * 100
		}
		response.Breakdown[i] = breakdown
	}

	for i, a := range report.Allocations {
		response.Allocations[i] = dto.AllocationDTO{
			Rank:         a.Rank,
			UserID:       a.UserID,
			TotalPoints:  a.TotalPoints,
			Proportional: a.Proportional,
			Tiered:       a.Tiered,
			Hybrid:       a.Hybrid,
		}
	}

	return response
}

func exportFilename(prefix, month string) string {
	return fmt.Sprintf("%s_%s.csv", prefix, strings.ReplaceAll(month, " ", "_"))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
