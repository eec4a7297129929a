package v1

import (
	"errors"
	"net/http"

	"github.com/finvue/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserHeaderMissing = errors.New("the X-User-ID header must be set")
	errUserHeaderInvalid = errors.New("the X-User-ID header is not a valid UUID")
)

// Transaction errors
var (
	errTransactionKindInvalid = errors.New("the specified transaction kind is invalid")
	errMonthInvalid           = errors.New("the month query parameter must be in YYYY-MM format")
)
