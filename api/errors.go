package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// StatusNetworkError is the status carried by failures where no response was obtained.
const StatusNetworkError = http.StatusInternalServerError

const (
	defaultErrorMessage = "An error occurred"
	networkErrorMessage = "Network error"
)

// ErrMalformedResponse wraps a successful response whose body could not be parsed.
var ErrMalformedResponse = errors.New("malformed response body")

// Error is a failed call: either the remote API rejected the request with a
// non-2xx status, or no response was obtained at all (IsNetwork).
type Error struct {
	Message    string
	StatusCode int
	Details    json.RawMessage
	network    bool
	err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsNetwork reports whether the failure happened before any response arrived.
// Its StatusCode is StatusNetworkError, which says nothing about what the
// server decided.
func (e *Error) IsNetwork() bool {
	return e.network
}

func networkError(cause error) *Error {
	return &Error{
		Message:    networkErrorMessage,
		StatusCode: StatusNetworkError,
		network:    true,
		err:        cause,
	}
}

// rejectedError builds the failure for a non-2xx response. The message comes
// from the body's "error" field, then its "message" field.
func rejectedError(status int, body []byte) *Error {
	var aux struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	}
	e := &Error{Message: defaultErrorMessage, StatusCode: status}
	if err := json.Unmarshal(body, &aux); err != nil {
		return e
	}
	var msg string
	if json.Unmarshal(aux.Error, &msg) == nil && msg != "" {
		e.Message = msg
	} else if aux.Message != "" {
		e.Message = aux.Message
	}
	if len(aux.Details) > 0 && string(aux.Details) != "null" {
		e.Details = aux.Details
	}
	return e
}

// StatusCode returns the status of an *Error in err's chain, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether the remote API answered 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && !apiErr.network && apiErr.StatusCode == http.StatusNotFound
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.network
}
