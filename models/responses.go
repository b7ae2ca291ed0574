package models

// AuthResponse is returned by the login endpoints on success. Redirect tells
// the client where to navigate once the session cookie has been set.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect,omitempty"`
}

// SuccessResponse is the generic success body for state-changing endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse carries a single error message to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessagesResponse is returned by GET /api/admin/messages.
type MessagesResponse struct {
	Messages []ContactMessage `json:"messages"`
}
