package onboardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeMissingField         = "missing_field"
	ErrorCodeDuplicateEmail       = "duplicate_email"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeNoActiveSession      = "no_active_session"
	ErrorCodeSessionStoreMismatch = "session_store_mismatch"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is an error response from the onboard API. The server writes
// these with WriteError and the client returns them from failed calls.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on error code so callers can use errors.Is against the
// predefined errors regardless of status or description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "Request body must be a JSON object with the documented fields.",
	}

	ErrMissingField = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMissingField,
		Description: "Missing required fields.",
	}

	ErrNoAvatar = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMissingField,
		Description: "No avatar selected.",
	}

	ErrDuplicateEmail = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateEmail,
		Description: "User with this email already exists.",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "Invalid email or password.",
	}

	ErrNoActiveSession = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeNoActiveSession,
		Description: "Please log in first.",
	}

	ErrSessionStoreMismatch = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeSessionStoreMismatch,
		Description: "Session expired. Please log in again.",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "Internal server error.",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
