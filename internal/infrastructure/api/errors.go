package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/erplite/backoffice-client/internal/core/domain"
)

// errorEnvelope is the API's canonical error body: {"detail": "..."}.
// Detail can be a string or a field-error object; anything non-string is
// re-rendered as compact JSON.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

// decodeError turns a non-2xx response into a domain error carrying the
// server's detail message.
func decodeError(resp *http.Response) error {
	detail := fmt.Sprintf("HTTP %d", resp.StatusCode)
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil && len(raw) > 0 {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Detail) > 0 {
			var s string
			if err := json.Unmarshal(envelope.Detail, &s); err == nil {
				detail = s
			} else {
				detail = string(envelope.Detail)
			}
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrSessionExpired, detail)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, detail)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, detail)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrConflict, detail)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrInvalidTransition, detail)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", domain.ErrUnavailable, detail)
	default:
		return fmt.Errorf("request rejected: %s", detail)
	}
}

// outcomeLabel maps an HTTP status to the metrics outcome label.
func outcomeLabel(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusForbidden:
		return "forbidden"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusConflict:
		return "conflict"
	case status >= http.StatusInternalServerError:
		return "server_error"
	default:
		return "invalid"
	}
}
