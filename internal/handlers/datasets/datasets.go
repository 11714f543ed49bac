package datasets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/arcadia-gaming/loyaltyrank/internal/domain"
	"github.com/arcadia-gaming/loyaltyrank/internal/dto"
	"github.com/arcadia-gaming/loyaltyrank/internal/service/datasetservice"
	"github.com/arcadia-gaming/loyaltyrank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ImportCSV(ctx context.Context, kind domain.TableKind, r io.Reader) (*datasetservice.ImportSummary, error)
	LoadSample(ctx context.Context) ([]datasetservice.ImportSummary, error)
	Status(ctx context.Context) ([]datasetservice.TableStatus, error)
}

type DatasetHandler struct {
	datasetService Service
}

func New(datasetService Service) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
	}
}

// Upload godoc
//
//	@Summary		Upload an activity table
//	@Description	Upload a CSV activity table (deposits, withdrawals or gameplay). Rows with unparseable dates or values are dropped and reported as a warning.
//	@Tags			Datasets
//	@Accept			plain
//	@Produce		json
//	@Param			kind	path		string					true	"Table kind"	Enums(deposits, withdrawals, gameplay)
//	@Success		200		{object}	dto.UploadResponseDTO	"Import summary"
//	@Failure		400		{object}	utils.Response			"Unknown table kind"
//	@Failure		422		{object}	utils.Response			"Required column missing"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/datasets/{kind} [post]
func (h *DatasetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	kind := domain.TableKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("unknown table kind: %s", kind))
		return
	}

	summary, err := h.datasetService.ImportCSV(r.Context(), kind, r.Body)
	if err != nil {
		var missing *datasetservice.MissingColumnError
		if errors.As(err, &missing) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, missing.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toUploadResponse(*summary))
}

// LoadSample godoc
//
//	@Summary		Load sample data
//	@Description	Replace all three activity tables with the built-in demonstration dataset.
//	@Tags			Datasets
//	@Produce		json
//	@Success		200	{array}		dto.UploadResponseDTO	"Import summaries"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/datasets/sample [post]
func (h *DatasetHandler) LoadSample(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.datasetService.LoadSample(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UploadResponseDTO, len(summaries))
	for i, summary := range summaries {
		response[i] = toUploadResponse(summary)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Status godoc
//
//	@Summary		Get dataset status
//	@Description	Report row counts and drop counts for the three activity tables.
//	@Tags			Datasets
//	@Produce		json
//	@Success		200	{array}		dto.DatasetStatusDTO	"Per-table status"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/datasets [get]
func (h *DatasetHandler) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.datasetService.Status(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DatasetStatusDTO, len(statuses))
	for i, status := range statuses {
		response[i] = dto.DatasetStatusDTO{
			Table:         string(status.Kind),
			Loaded:        status.Loaded,
			Rows:          status.Rows,
			InvalidDates:  status.InvalidDates,
			InvalidValues: status.InvalidValues,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toUploadResponse(summary datasetservice.ImportSummary) dto.UploadResponseDTO {
	response := dto.UploadResponseDTO{
		Table:         string(summary.Kind),
		RowsAccepted:  summary.Rows,
		InvalidDates:  summary.InvalidDates,
		InvalidValues: summary.InvalidValues,
	}
	if summary.InvalidDates > 0 {
		response.Warning = fmt.Sprintf("removed %d rows with invalid dates from %s data", summary.InvalidDates, summary.Kind)
	}
	return response
}
