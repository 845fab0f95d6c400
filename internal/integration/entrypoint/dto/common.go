// Package dto defines data transfer objects for API requests and responses.
package dto

// Response is the envelope every endpoint returns. Success carries data,
// failure carries a message and optionally a machine-readable code.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Success wraps a payload in a successful envelope.
func Success(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// SuccessMessage builds a successful envelope carrying only a message.
func SuccessMessage(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

// Error builds a failed envelope with a message and error code.
func Error(message, code string) Response {
	return Response{
		Success: false,
		Message: message,
		Code:    code,
	}
}
