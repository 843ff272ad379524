package dto

// APIResponse is the envelope returned on every path, success or failure.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// NewSuccessResponse creates a success envelope with a payload
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{Message: message, Data: data}
}

// NewMessageResponse creates a success envelope without a payload
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Message: message}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string, errs ...string) APIResponse {
	return APIResponse{Message: message, Errors: errs}
}
