package auth_api

// Response bodies. Every response is written with HTTP 200; the payload carries the outcome.

// MessageResponse reports a successful operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse reports a failed operation.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is returned by the user lookup endpoint.
type UserResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const (
	MsgUserRegistered = "User registered successfully"
	MsgLoginSuccess   = "Login successful"
)
