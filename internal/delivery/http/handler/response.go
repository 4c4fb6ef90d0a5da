package handler

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProfileResponse is returned after a profile write
type ProfileResponse struct {
	Message string         `json:"message"`
	Profile map[string]any `json:"profile"`
}

// MemberResponse is returned after a member sync
type MemberResponse struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// StatusResponse is returned by health probes
type StatusResponse struct {
	Status string `json:"status"`
}

const (
	msgInternalError  = "Internal server error"
	msgInvalidBody    = "invalid request body"
	msgForbidden      = "Forbidden: You can only update your own profile"
	msgUpdateFailed   = "failed to update profile"
	msgMissingUserID  = "Missing User ID"
	msgMemberFailed   = "Failed to update member"
	msgInvalidRequest = "invalid query parameters"
)
