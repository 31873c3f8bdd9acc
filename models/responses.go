package models

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`

	// Fields is set for validation failures only.
	Fields ValidationErrors `json:"fields,omitempty"`
}

// UserResponse wraps an account or session view.
type UserResponse struct {
	User any `json:"user"`
}

// DuplicateCheckResponse is the body returned by POST /api/auth/check-duplicate.
type DuplicateCheckResponse struct {
	Exists bool `json:"exists"`
}

// SuccessResponse is returned by endpoints that have nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}
