package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable codes surfaced to callers of the query surface.
const (
	CodeInvalidArguments = "INVALID_ARGUMENTS"
	CodeInvalidType      = "INVALID_TYPE"
	CodeQueryError       = "QUERY_ERROR"
	CodeNotImplemented   = "NOT_IMPLEMENTED"
	CodeChannelNotFound  = "CHANNEL_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

const (
	msgInvalidArguments = "Missing or invalid arguments"
	msgInvalidType      = "Invalid health data type: %s"
)

// ChannelError is a terminal, structured failure of a method call.
// Message is human-readable and returned to the caller as-is.
type ChannelError struct {
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *ChannelError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ChannelError) Unwrap() error {
	return e.Err
}

// InvalidArguments reports missing or ill-typed request fields.
func InvalidArguments() *ChannelError {
	return &ChannelError{Code: CodeInvalidArguments, Message: msgInvalidArguments}
}

// InvalidType reports an unrecognized metric label.
func InvalidType(label string) *ChannelError {
	return &ChannelError{Code: CodeInvalidType, Message: fmt.Sprintf(msgInvalidType, label)}
}

// QueryError wraps an oracle-reported failure. The cause's message is passed through verbatim.
func QueryError(cause error) *ChannelError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return &ChannelError{Code: CodeQueryError, Message: msg, Err: cause}
}

// CodeOf returns the code carried by err, or "" if err is not a ChannelError.
func CodeOf(err error) string {
	var ce *ChannelError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// ErrorResponse is the JSON error body returned by the HTTP transports.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// Response maps err to an HTTP status and error body.
// Errors that are not ChannelErrors become 500 INTERNAL_ERROR.
func Response(err error) (int, ErrorResponse) {
	var ce *ChannelError
	if !errors.As(err, &ce) {
		return http.StatusInternalServerError, ErrorResponse{
			Code:    CodeInternalError,
			Message: "Internal error",
		}
	}

	resp := ErrorResponse{Code: ce.Code, Message: ce.Message, Details: ce.Details}
	switch ce.Code {
	case CodeInvalidArguments, CodeInvalidType:
		return http.StatusBadRequest, resp
	case CodeQueryError:
		return http.StatusBadGateway, resp
	case CodeNotImplemented:
		return http.StatusNotImplemented, resp
	case CodeChannelNotFound:
		return http.StatusNotFound, resp
	default:
		return http.StatusInternalServerError, resp
	}
}
