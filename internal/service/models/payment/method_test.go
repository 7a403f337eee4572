package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	method, err := ParseMethod("CARD")
	require.NoError(t, err)
	assert.Equal(t, MethodCard, method)

	method, err = ParseMethod("CASH")
	require.NoError(t, err)
	assert.Equal(t, MethodCash, method)

	_, err = ParseMethod("BITCOIN")
	assert.ErrorIs(t, err, ErrInvalidMethod)

	_, err = ParseMethod("card")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}
