package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []Status{StatusCreated, StatusConfirmed, StatusDelivered, StatusCancelled} {
		status, err := ParseStatus(valid.String())
		require.NoError(t, err)
		assert.Equal(t, valid, status)
	}

	_, err := ParseStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
