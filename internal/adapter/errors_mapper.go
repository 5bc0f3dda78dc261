package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError folds an HTTP response into the adapter error taxonomy so the
// engine only ever reasons about ErrUnavailable / ErrRejected /
// ErrUnauthorized via errors.Is.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: http %d: %s", ErrUnauthorized, code, body)
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, code, body)
	case code == http.StatusNotImplemented:
		return fmt.Errorf("%w: http %d: %s", ErrRejected, code, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, code, body)
	default:
		// remaining 4xx: the request itself is unacceptable and a retry
		// with identical content cannot succeed
		return fmt.Errorf("%w: http %d: %s", ErrRejected, code, body)
	}
}
