package response

import "encoding/json"

// Response is the envelope every dashboard route answers with
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"` // user-facing toast text
	Error      string      `json:"error,omitempty"`
}

// Success wraps data in a success envelope
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// SuccessWithMessage wraps data and a user-facing message, shown by the UI
// as a toast
func SuccessWithMessage(statusCode int, data interface{}, message string) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}

// NullData is an explicit JSON null for endpoints where "no data" is a
// normal success outcome (e.g. the current-user endpoint while anonymous),
// distinguishing it from the field being omitted.
var NullData = json.RawMessage("null")

// Error wraps an error message in an error envelope
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
