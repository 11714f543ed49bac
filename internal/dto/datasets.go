package dto

type UploadResponseDTO struct {
	Table         string `json:"table" example:"deposits"`
	RowsAccepted  int    `json:"rows_accepted" example:"10"`
	InvalidDates  int    `json:"invalid_dates" example:"0"`
	InvalidValues int    `json:"invalid_values" example:"0"`
	Warning       string `json:"warning,omitempty" example:"removed 2 rows with invalid dates from deposits data"`
}

type DatasetStatusDTO struct {
	Table         string `json:"table" example:"gameplay"`
	Loaded        bool   `json:"loaded" example:"true"`
	Rows          int    `json:"rows" example:"15"`
	InvalidDates  int    `json:"invalid_dates" example:"0"`
	InvalidValues int    `json:"invalid_values" example:"0"`
}
