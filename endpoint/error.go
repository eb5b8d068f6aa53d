package endpoint

import (
	"fmt"
	"strings"
)

// Server error codes that invalidate the refresh token.
const (
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
	CodeUserDisabled        = "USER_DISABLED"
	CodeUserNotFound        = "USER_NOT_FOUND"
)

// Error represents an error reported by the token service.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message != "" && e.Message != e.Code {
		return fmt.Sprintf("token endpoint: %s (status: %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("token endpoint: %s (status: %d)", e.Code, e.StatusCode)
}

// Revoked reports whether the server rejected the refresh token itself.
func (e *Error) Revoked() bool {
	switch e.Code {
	case CodeTokenExpired, CodeInvalidRefreshToken, CodeUserDisabled, CodeUserNotFound:
		return true
	}
	return false
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// newError maps an error body, e.g. "INVALID_REFRESH_TOKEN : details".
func newError(statusCode int, body *errorResponse) *Error {
	ret := &Error{StatusCode: statusCode}
	if body == nil {
		ret.Code = "UNKNOWN"
		return ret
	}
	message := strings.TrimSpace(body.Error.Message)
	ret.Message = message
	code, detail, found := strings.Cut(message, ":")
	ret.Code = strings.TrimSpace(code)
	if found {
		ret.Message = strings.TrimSpace(detail)
	}
	if ret.Code == "" {
		ret.Code = body.Error.Status
	}
	if ret.Code == "" {
		ret.Code = "UNKNOWN"
	}
	return ret
}
