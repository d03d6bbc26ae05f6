package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// BadResponseCodes are the statuses for which the API documents a JSON
// error payload of the form {"error": {"message": ...}}.
var BadResponseCodes = map[int]bool{
	http.StatusBadRequest:          true, // 400
	http.StatusUnauthorized:        true, // 401
	http.StatusForbidden:           true, // 403
	http.StatusNotFound:            true, // 404
	http.StatusMethodNotAllowed:    true, // 405
	http.StatusTooManyRequests:     true, // 429
	http.StatusInternalServerError: true, // 500
	http.StatusServiceUnavailable:  true, // 503
}

// ValidationError reports invalid input caught before any request is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "hipchat: " + e.Reason
}

// RemoteError is an error reported by the API itself: the status code
// of the response together with the message from its error payload.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("hipchat: api error (status %d): %s", e.StatusCode, e.Message)
}

// ContractError means the API answered in a way the client does not
// know how to interpret: an error status outside BadResponseCodes, or
// an error body without the documented shape. It is a distinct kind
// from RemoteError and callers are not expected to recover from it.
type ContractError struct {
	StatusCode int
	Body       []byte
	Reason     string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("hipchat: unexpected api response (status %d): %s", e.StatusCode, e.Reason)
}

// responseError maps a non-2xx response to the matching error type.
func responseError(statusCode int, body []byte) error {
	if !BadResponseCodes[statusCode] {
		return &ContractError{
			StatusCode: statusCode,
			Body:       body,
			Reason:     "status code is not part of the documented error set",
		}
	}

	// Pointer fields distinguish a missing key from an empty value.
	var payload struct {
		Error *struct {
			Message *string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &ContractError{StatusCode: statusCode, Body: body, Reason: "error body is not valid JSON"}
	}
	if payload.Error == nil || payload.Error.Message == nil {
		return &ContractError{StatusCode: statusCode, Body: body, Reason: "error body is missing error.message"}
	}
	return &RemoteError{StatusCode: statusCode, Message: *payload.Error.Message}
}
