package upstream

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is returned whenever an upstream API answers with a non-success
// status. It keeps the upstream status and body verbatim; callers decide
// how to report the failure, nothing is retried or decoded further.
type Error struct {
	Service    string
	StatusCode int
	Status     string
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s request failed with status %s", e.Service, e.Status)
	}
	return fmt.Sprintf("%s request failed with status %s: %s", e.Service, e.Status, e.Body)
}

// FromResponse builds an Error from a non-success HTTP response, draining
// the body for the error message.
func FromResponse(service string, resp *http.Response) *Error {
	body, _ := io.ReadAll(resp.Body)

	return &Error{
		Service:    service,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
