package errs

import (
	"errors"
	"fmt"
)

// ErrLockTimeout reports that a row-lock wait exceeded the configured
// budget. The transaction was rolled back; the request is safe to retry.
var ErrLockTimeout = errors.New("lock wait timed out")

// ValidationError reports a malformed order request. It is detected before
// any lock is taken, so it never has transaction side effects.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ProductNotFoundError reports a referenced product id that does not exist.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError reports a requested quantity above the current
// stock of a product.
type InsufficientStockError struct {
	ProductID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

// PersistenceError wraps a storage failure that aborted the transaction.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
