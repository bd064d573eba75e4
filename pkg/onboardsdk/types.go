package onboardsdk

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	// Error is the machine readable code (e.g. "duplicate_email")
	Error string `json:"error"`

	// ErrorDescription is a short human readable message
	ErrorDescription string `json:"error_description"`
}

// MessageResponse is the JSON body of successful mutating API calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AvatarRequest is the body of POST /api/avatar.
type AvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

// PersonalizeRequest is the body of POST /api/personalize.
type PersonalizeRequest struct {
	Preferences []string `json:"preferences"`
}

// ProfileResponse is the session snapshot returned by GET /api/me.
type ProfileResponse struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	AvatarURL   string   `json:"avatar_url"`
	Preferences []string `json:"preferences"`
	ExpiresAt   string   `json:"expires_at"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Store string `json:"store"`
}
