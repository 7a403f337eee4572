package postgres

import (
	"errors"
	"testing"

	"github.com/commercelabs/order/internal/service/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapLockError(t *testing.T) {
	lockErr := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}
	assert.ErrorIs(t, MapLockError(lockErr), errs.ErrLockTimeout)

	uniqueErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}
	assert.Equal(t, error(uniqueErr), MapLockError(uniqueErr))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapLockError(plain))

	assert.Nil(t, MapLockError(nil))
}
