package handler

import (
	"errors"
	"net/http"

	"github.com/familyalbum/album-backend/internal/gallery"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ViewerHandler drives the per-user lightbox session
type ViewerHandler struct {
	sessions *gallery.Sessions
}

// NewViewerHandler creates a new ViewerHandler
func NewViewerHandler(sessions *gallery.Sessions) *ViewerHandler {
	return &ViewerHandler{sessions: sessions}
}

// OpenViewerRequest opens the viewer on a photo within a filtered view
type OpenViewerRequest struct {
	PhotoID  string `json:"photo_id" binding:"required"`
	Query    string `json:"query"`
	Category string `json:"category"`
}

// KeyRequest is a key press forwarded from the client
type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// Open handles POST /api/v1/viewer
func (h *ViewerHandler) Open(c *gin.Context) {
	var req OpenViewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.sessions.Open(c.Request.Context(), middleware.GetUserID(c), req.PhotoID,
		gallery.Criteria{Query: req.Query, Category: req.Category})
	if err != nil {
		fail(c, viewerMessage(c, "viewer.open_failed", err), err)
		return
	}
	ok(c, view, nil)
}

// Get handles GET /api/v1/viewer
func (h *ViewerHandler) Get(c *gin.Context) {
	view, err := h.sessions.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		fail(c, middleware.T(c, "error.fetch_failed"), err)
		return
	}
	ok(c, view, nil)
}

// Next handles POST /api/v1/viewer/next
func (h *ViewerHandler) Next(c *gin.Context) {
	h.reply(c)(h.sessions.Next(c.Request.Context(), middleware.GetUserID(c)))
}

// Prev handles POST /api/v1/viewer/prev
func (h *ViewerHandler) Prev(c *gin.Context) {
	h.reply(c)(h.sessions.Prev(c.Request.Context(), middleware.GetUserID(c)))
}

// Key handles POST /api/v1/viewer/keys
func (h *ViewerHandler) Key(c *gin.Context) {
	var req KeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.sessions.Key(c.Request.Context(), middleware.GetUserID(c), gallery.Key(req.Key)))
}

// Close handles DELETE /api/v1/viewer
func (h *ViewerHandler) Close(c *gin.Context) {
	if err := h.sessions.Close(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		fail(c, middleware.T(c, "viewer.close_failed"), err)
		return
	}
	ok(c, &gallery.View{}, nil)
}

func (h *ViewerHandler) reply(c *gin.Context) func(*gallery.View, error) {
	return func(view *gallery.View, err error) {
		if err != nil {
			fail(c, viewerMessage(c, "viewer.update_failed", err), err)
			return
		}
		ok(c, view, nil)
	}
}

// viewerMessage picks the message for a lightbox error; fallbackKey covers
// storage and photo load failures
func viewerMessage(c *gin.Context, fallbackKey string, err error) string {
	switch {
	case errors.Is(err, gallery.ErrClosed):
		return middleware.T(c, "viewer.not_open")
	case errors.Is(err, gallery.ErrPhotoNotInView):
		return middleware.T(c, "viewer.photo_not_in_view")
	case errors.Is(err, gallery.ErrEmptyView):
		return middleware.T(c, "viewer.empty_view")
	case statusFor(err) == http.StatusNotFound:
		return middleware.T(c, "error.not_found")
	default:
		return middleware.T(c, fallbackKey)
	}
}
