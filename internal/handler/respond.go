package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/form"
	"github.com/familyalbum/album-backend/internal/gallery"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// statusFor maps a domain error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrMemberNotFound),
		errors.Is(err, common.ErrEventNotFound),
		errors.Is(err, common.ErrPhotoNotFound),
		errors.Is(err, common.ErrMemoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrUnsupportedType),
		errors.Is(err, viewmodel.ErrUnknownTab),
		errors.Is(err, form.ErrNoFileSelected),
		errors.Is(err, form.ErrNotImage),
		errors.Is(err, gallery.ErrPhotoNotInView),
		errors.Is(err, gallery.ErrEmptyView):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrUserAlreadyExists),
		errors.Is(err, form.ErrSubmitInFlight),
		errors.Is(err, gallery.ErrClosed):
		return http.StatusConflict
	case errors.Is(err, common.ErrStorageUpload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func notices(c *gin.Context) []notify.Notice {
	return middleware.Notices(c).Notices()
}

// fail writes the error envelope with any notices recorded so far
func fail(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	common.ErrorResponse(c, status, message, err, notices(c)...)
}

// notFound records a destructive notice for a missing detail record
func notFound(c *gin.Context, descKey string, err error) {
	middleware.Notices(c).Notify(notify.Failure("notice.error", descKey))
	fail(c, middleware.T(c, descKey), err)
}

func ok(c *gin.Context, data interface{}, meta *common.Meta) {
	common.SuccessResponse(c, data, meta, notices(c)...)
}

func created(c *gin.Context, data interface{}) {
	common.CreatedResponse(c, data, notices(c)...)
}

func badRequest(c *gin.Context, err error) {
	common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err, notices(c)...)
}

// parseDate parses an optional YYYY-MM-DD value
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("date %q must be YYYY-MM-DD: %w", *s, common.ErrInvalidInput)
	}
	return &t, nil
}

// readFile loads a multipart file field. A missing field yields nil.
func readFile(c *gin.Context, field string, maxBytes int64) (*form.File, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrInvalidInput)
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, common.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	// 브라우저가 타입을 모르면 octet-stream 으로 보냄 -> 내용으로 판별
	contentType := fh.Header.Get("Content-Type")
	if contentType == "application/octet-stream" {
		contentType = ""
	}
	return &form.File{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}
