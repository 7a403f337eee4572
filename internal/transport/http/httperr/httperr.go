package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/commercelabs/order/internal/service/errs"
)

// Status maps a service error to an HTTP status code. Client faults map to
// 4xx, lock timeouts to 503 (safe to retry), everything else to 500.
func Status(err error) int {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var notFoundErr *errs.ProductNotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}

	var stockErr *errs.InsufficientStockError
	if errors.As(err, &stockErr) {
		return http.StatusConflict
	}

	if errors.Is(err, errs.ErrLockTimeout) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// Write logs the error and writes it with its mapped status code.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "status", status)
	}
	http.Error(w, err.Error(), status)
}
