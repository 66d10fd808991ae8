package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// APIError is an error response the backend produced itself, as opposed to a
// transport failure. Message is safe to show to the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into *APIError when the backend answered with an
// error body. Transport failures return nil, false.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorEnvelope is the accepted structured error body. The backend is
// inconsistent between {"message": ...} objects and plain-text bodies; the
// object form wins, anything else is treated as raw text.
type errorEnvelope struct {
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: TranslateConflict(msg)}
}

var constraintTable = regexp.MustCompile("`(\\w+)`[,\\s]+CONSTRAINT")

// TranslateConflict rewrites known plain-text backend errors into friendlier
// sentences. Coupled to backend phrasing; unknown text passes through as-is.
func TranslateConflict(raw string) string {
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "foreign key constraint") {
		relation := "related records"
		if m := constraintTable.FindStringSubmatch(raw); m != nil {
			relation = m[1]
		}
		return fmt.Sprintf("Cannot delete because there are %s in the system. Please delete the related %s first, then try again.", relation, relation)
	}
	if strings.Contains(lower, "cannot delete yourself") {
		return "You cannot delete your own account while logged in."
	}
	if strings.Contains(lower, "last admin") {
		return "Cannot delete the last admin user in the system."
	}

	return raw
}
