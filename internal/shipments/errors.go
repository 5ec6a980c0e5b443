package shipments

import (
	"errors"
	"net/http"
)

// APIError is a failed call to the shipments API. Message is the text shown
// to the operator.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Temporary reports whether the failure lies with the upstream service
// rather than with the request.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// IsUpstreamFailure decides whether err should count against the circuit
// breaker. Requests the API answered with a client error do not.
func IsUpstreamFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return err != nil
}
