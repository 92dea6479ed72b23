package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/matryer/is"
)

func TestAPIErrorDecodesPayload(t *testing.T) {
	is := is.New(t)

	err := NewAPIErrorFromResponse(http.StatusBadRequest, []byte(`{"code":"invalid-item-id","message":"Not a valid item ID: Q0"}`))

	var apiErr *APIError
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr.StatusCode, http.StatusBadRequest)
	is.Equal(apiErr.Payload.Code, "invalid-item-id")
	is.Equal(apiErr.Payload.Message, "Not a valid item ID: Q0")
	is.True(errors.Is(err, ErrAPIError))
}

func TestAPIErrorKeepsStatusOnBrokenPayload(t *testing.T) {
	is := is.New(t)

	err := NewAPIErrorFromResponse(http.StatusInternalServerError, []byte("<html>gateway error</html>"))

	var apiErr *APIError
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr.StatusCode, http.StatusInternalServerError)
	is.Equal(apiErr.Payload.Code, "")
}

func TestAPIError404MatchesNotFound(t *testing.T) {
	is := is.New(t)

	err := NewAPIErrorFromResponse(http.StatusNotFound, []byte(`{"code":"item-not-found","message":"Could not find an item with the ID: Q6"}`))

	is.True(errors.Is(err, ErrNotFound))
}

func TestFieldError(t *testing.T) {
	is := is.New(t)

	err := NewInvalidFieldError("rank", []byte(`{"id":"Q42$abc"}`))

	is.True(errors.Is(err, ErrInvalidField))

	var fieldErr *FieldError
	is.True(errors.As(err, &fieldErr))
	is.Equal(fieldErr.Field, "rank")
}

func TestIdentityErrors(t *testing.T) {
	is := is.New(t)

	is.True(errors.Is(NewMissingIDError("statement has no id"), ErrMissingID))
	is.True(errors.Is(NewHasIDError("id must not be set on create"), ErrHasID))
	is.True(errors.Is(NewNoEntityIDError("entity id is unset"), ErrNoEntityID))
}
