package dto

// MessageResponse is a generic success response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic error response body.
// Error messages are intentionally generic to avoid leaking account state.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries the signed session token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}
