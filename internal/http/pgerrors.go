package httpserver

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGErrorMessage maps common Postgres errors to user-friendly HTTP status + message.
// If err is not a pg error, returns 500 with the provided fallback message.
func PGErrorMessage(err error, fallback string) (int, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Unknown error type; hide details
		return http.StatusInternalServerError, fallback
	}

	code := pgErr.Code
	status := http.StatusBadRequest
	msg := fallback

	switch code {
	case "23505": // unique_violation
		status = http.StatusConflict
		switch pgErr.ConstraintName {
		case "technicians_pkey", "jobs_pkey", "assets_pkey", "time_entries_pkey":
			msg = "A record with this id already exists."
		default:
			msg = "Duplicate value violates a unique constraint."
		}
	case "23503": // foreign_key_violation
		status = http.StatusBadRequest
		switch pgErr.ConstraintName {
		case "jobs_assigned_technician_fkey", "assets_assigned_to_fkey", "time_entries_technician_id_fkey":
			msg = "Referenced technician not found."
		case "time_entries_job_id_fkey", "asset_usages_job_id_fkey":
			msg = "Referenced job not found."
		case "asset_usages_asset_id_fkey":
			msg = "Referenced asset not found."
		default:
			msg = "Referenced record not found."
		}
	case "23514": // check_violation
		status = http.StatusBadRequest
		switch pgErr.ConstraintName {
		case "assets_quantity_check":
			msg = "Quantity must be non-negative."
		case "jobs_status_check":
			msg = "Invalid job status."
		case "jobs_priority_check":
			msg = "Invalid priority."
		case "technicians_status_check":
			msg = "Invalid technician status."
		case "assets_type_check":
			msg = "Invalid asset type."
		case "assets_condition_check":
			msg = "Invalid asset condition."
		default:
			msg = "Value violates a check constraint."
		}
	case "23502": // not_null_violation
		status = http.StatusBadRequest
		msg = "Missing required field."
	case "22P02": // invalid_text_representation
		status = http.StatusBadRequest
		msg = "Invalid value format."
	case "22007": // invalid_datetime_format
		status = http.StatusBadRequest
		msg = "Invalid date/time format."
	case "22001": // string_data_right_truncation
		status = http.StatusBadRequest
		msg = "Value is too long."
	case "22003": // numeric_value_out_of_range
		status = http.StatusBadRequest
		msg = "Numeric value out of range."
	default:
		// For any other PG error, avoid leaking internals
		status = http.StatusBadRequest
		msg = fallback
	}

	return status, msg
}
