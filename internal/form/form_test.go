package form

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
)

func personForm() *Form {
	return NewCreate(
		Field{Name: "name", Label: "Name", Kind: Text, Required: true},
		Field{Name: "email", Label: "Email", Kind: Text, Required: true},
		Field{Name: "user", Label: "User", Kind: Select, Required: true},
		Field{Name: "access", Label: "Access type", Kind: MultiSelect, Required: true},
	)
}

func TestNewCreateStartsReady(t *testing.T) {
	f := personForm()
	assert.Equal(t, StateReady, f.State())
	assert.True(t, f.CanSubmit())
}

func TestNewEditStartsFetching(t *testing.T) {
	f := NewEdit(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	assert.Equal(t, StateFetching, f.State())
	assert.False(t, f.CanSubmit())

	f.Seed(map[string]string{"name": "Ana"}, nil)
	assert.Equal(t, StateReady, f.State())
	assert.Equal(t, "Ana", f.Value("name"))
	assert.True(t, f.CanSubmit())
}

func TestFetchFailed(t *testing.T) {
	f := NewEdit(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	f.FetchFailed(true, "no such record")
	assert.Equal(t, StateNotFound, f.State())
	assert.Equal(t, "no such record", f.Err())
	assert.False(t, f.CanSubmit())

	f = NewEdit(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	f.FetchFailed(false, "connection refused")
	assert.Equal(t, StateFetchFailed, f.State())
}

func TestValidateFirstFailureWins(t *testing.T) {
	f := personForm()

	err := f.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "name cannot be empty", verr.Message)
	assert.Equal(t, verr.Message, f.Err())
}

func TestValidateMessagesByKind(t *testing.T) {
	f := personForm()
	f.Set("name", "Ana")
	f.Set("email", "ana@example.com")

	err := f.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "please select a user")

	f.Set("user", "1")
	err = f.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "please select at least one access type")

	f.SetMulti("access", []string{"GitHub"})
	assert.NoError(t, f.Validate())
}

func TestValidateWhitespaceOnlyText(t *testing.T) {
	f := NewCreate(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	f.Set("name", "   ")
	assert.Error(t, f.Validate())
}

func TestValidationErrorUnwrapsSentinel(t *testing.T) {
	f := personForm()
	err := f.Validate()
	assert.ErrorIs(t, err, perrors.ErrValidation)
}

func TestSubmitInvalidMakesNoRequest(t *testing.T) {
	f := personForm()

	calls := 0
	_, err := f.Submit(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrValidation)
	assert.Equal(t, 0, calls)
	assert.Equal(t, StateReady, f.State())
}

func TestSubmitSuccess(t *testing.T) {
	f := NewCreate(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	f.Set("name", "Ana")

	var stateDuringSend State
	msg, err := f.Submit(context.Background(), func(context.Context) (string, error) {
		stateDuringSend = f.State()
		return "created", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "created", msg)
	assert.Equal(t, StateSubmitting, stateDuringSend)
	assert.Equal(t, StateSucceeded, f.State())
	assert.False(t, f.CanSubmit())
}

func TestSubmitFailureStaysReadyForRetry(t *testing.T) {
	f := NewCreate(Field{Name: "name", Label: "Name", Kind: Text, Required: true})
	f.Set("name", "Ana")

	_, err := f.Submit(context.Background(), func(context.Context) (string, error) {
		return "", fmt.Errorf("correo ya registrado")
	})

	require.Error(t, err)
	assert.Equal(t, StateReady, f.State())
	assert.Equal(t, "correo ya registrado", f.Err())

	// Retry after adjusting succeeds and clears the message.
	msg, err := f.Submit(context.Background(), func(context.Context) (string, error) {
		return "created", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "created", msg)
	assert.Equal(t, "", f.Err())
}

func TestSubmitRejectedWhileNotReady(t *testing.T) {
	f := NewEdit(Field{Name: "name", Label: "Name", Kind: Text, Required: true})

	_, err := f.Submit(context.Background(), func(context.Context) (string, error) {
		t.Fatal("send must not run before the form is seeded")
		return "", nil
	})
	assert.Error(t, err)
}

func TestToggle(t *testing.T) {
	f := NewCreate(Field{Name: "access", Label: "Access type", Kind: MultiSelect, Required: true})

	f.Toggle("access", "GitHub")
	f.Toggle("access", "AWS")
	assert.Equal(t, []string{"GitHub", "AWS"}, f.Multi("access"))

	f.Toggle("access", "GitHub")
	assert.Equal(t, []string{"AWS"}, f.Multi("access"))
}
