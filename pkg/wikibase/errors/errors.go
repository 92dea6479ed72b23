package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")
var ErrAPIError = fmt.Errorf("api error")
var ErrInvalidField = fmt.Errorf("missing or invalid field")
var ErrMissingID = fmt.Errorf("missing id")
var ErrHasID = fmt.Errorf("id already set")
var ErrNoEntityID = fmt.Errorf("entity id is not set")
var ErrUnexpectedResponse = fmt.Errorf("unexpected response")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewMissingIDError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrMissingID,
	}
}

func NewHasIDError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrHasID,
	}
}

func NewNoEntityIDError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNoEntityID,
	}
}

func NewUnexpectedResponseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnexpectedResponse,
	}
}

// FieldError reports a response body whose shape does not match
// the expected field or type. It keeps the offending fragment so
// callers can produce a precise diagnostic.
type FieldError struct {
	Field    string
	Fragment json.RawMessage
}

func (f *FieldError) Error() string {
	return fmt.Sprintf("missing or invalid field \"%s\" in %s", f.Field, string(f.Fragment))
}

func (f *FieldError) Is(target error) bool { return target == ErrInvalidField }

func NewInvalidFieldError(field string, fragment []byte) error {
	return &FieldError{Field: field, Fragment: json.RawMessage(fragment)}
}

// ErrorPayload is the structured failure body returned by the store.
type ErrorPayload struct {
	Code    string                     `json:"code"`
	Message string                     `json:"message"`
	Context map[string]json.RawMessage `json:"context,omitempty"`
}

// APIError carries a non-2xx response: the HTTP status and the decoded
// error payload. If the payload could not be decoded it is left empty
// rather than losing the status code.
type APIError struct {
	StatusCode int
	Status     string
	Payload    ErrorPayload
}

func (a *APIError) Error() string {
	return fmt.Sprintf("%s: %s: %s", a.Status, a.Payload.Code, a.Payload.Message)
}

func (a *APIError) Is(target error) bool {
	if target == ErrAPIError {
		return true
	}
	return a.StatusCode == http.StatusNotFound && target == ErrNotFound
}

// NewAPIErrorFromResponse decodes the standard {code, message, context}
// failure body for the given status code.
func NewAPIErrorFromResponse(statusCode int, body []byte) error {
	apiErr := &APIError{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}

	// a payload that fails to decode is substituted with an empty one
	_ = json.Unmarshal(body, &apiErr.Payload)

	return apiErr
}
