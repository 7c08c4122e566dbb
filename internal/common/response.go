package common

import (
	"net/http"

	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Notices []notify.Notice `json:"notices,omitempty"`
}

// Meta pagination and additional metadata
type Meta struct {
	Page       int   `json:"page,omitempty"`
	PerPage    int   `json:"per_page,omitempty"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CodeFetchFailed marks a read that failed upstream, as opposed to an empty result
const CodeFetchFailed = "FETCH_FAILED"

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Meta, notices ...notify.Notice) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
		Notices: notices,
	})
}

// CreatedResponse returns a 201 Created response
func CreatedResponse(c *gin.Context, data interface{}, notices ...notify.Notice) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
		Notices: notices,
	})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error, notices ...notify.Notice) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil && status < 500 {
		errInfo.Details = err.Error()
	}

	c.JSON(status, APIResponse{
		Error:   errInfo,
		Notices: notices,
	})
}

// FetchFailedResponse reports a failed read. data is still sent (normally an
// empty collection) so the client can choose between empty and error states.
func FetchFailedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, APIResponse{
		Data: data,
		Error: &ErrorInfo{
			Code:    CodeFetchFailed,
			Message: message,
		},
	})
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 413:
		return "PAYLOAD_TOO_LARGE"
	case 429:
		return "RATE_LIMITED"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	case 502:
		return "UPSTREAM_FAILED"
	default:
		return "ERROR"
	}
}
