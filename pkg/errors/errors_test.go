package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError("create person", "create-user", fmt.Errorf("boom"))
	assert.Equal(t, "failed to create person (create-user): boom", err.Error())

	err = NewAPIError("log in", "", fmt.Errorf("boom"))
	assert.Equal(t, "failed to log in: boom", err.Error())
}

func TestAPIErrorPreservesSentinels(t *testing.T) {
	err := WrapAPIError("list people", "get-users", ErrSessionExpired)
	assert.ErrorIs(t, err, ErrSessionExpired)

	wrapped := WrapAPIError("get person", "get-users", fmt.Errorf("%w: id 7", ErrPersonNotFound))
	assert.ErrorIs(t, wrapped, ErrPersonNotFound)
}

func TestWrapAPIErrorNil(t *testing.T) {
	assert.NoError(t, WrapAPIError("list people", "get-users", nil))
}

func TestWrapAPIErrorNoDoubleWrap(t *testing.T) {
	inner := WrapAPIError("list people", "get-users", fmt.Errorf("boom"))
	outer := WrapAPIError("load dashboard", "get-users", inner)

	assert.Same(t, inner, outer)

	var apiErr *APIError
	require.True(t, errors.As(outer, &apiErr))
	assert.Equal(t, "list people", apiErr.Operation)
}
