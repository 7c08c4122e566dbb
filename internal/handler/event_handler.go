package handler

import (
	"net/http"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/internal/viewmodel"
	"github.com/familyalbum/album-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// EventHandler serves family events
type EventHandler struct {
	events  service.EventService
	details *viewmodel.EventDetailBuilder
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(events service.EventService, photos service.PhotoService) *EventHandler {
	return &EventHandler{events: events, details: viewmodel.NewEventDetailBuilder(events, photos)}
}

// List handles GET /api/v1/events. With ?partition=true the events are split
// into upcoming and past.
func (h *EventHandler) List(c *gin.Context) {
	if ginutil.QueryBool(c, "partition") {
		res := h.events.PartitionEvents(c.Request.Context())
		if !res.OK() {
			common.FetchFailedResponse(c, middleware.T(c, "event.load_failed"), res.Data)
			return
		}
		ok(c, res.Data, nil)
		return
	}

	res := h.events.ListEvents(c.Request.Context())
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "event.load_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}

// Create handles POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := h.events.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "event.create_failed"))
		fail(c, middleware.T(c, "event.create_failed"), err)
		return
	}

	middleware.Notices(c).Notify(notify.Success("event.create_success"))
	created(c, event)
}

// Get handles GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	res := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		h.eventFailed(c, res.Err)
		return
	}
	ok(c, res.Data, nil)
}

// Detail handles GET /api/v1/events/:id/detail?tab=
func (h *EventHandler) Detail(c *gin.Context) {
	page, err := h.details.Build(c.Request.Context(), c.Param("id"), c.Query("tab"))
	if err != nil {
		h.eventFailed(c, err)
		return
	}
	if page.LoadErr != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "error.fetch_failed"))
	}
	ok(c, page, nil)
}

func (h *EventHandler) eventFailed(c *gin.Context, err error) {
	if statusFor(err) == http.StatusNotFound {
		notFound(c, "event.not_found", err)
		return
	}
	fail(c, middleware.T(c, "event.load_failed"), err)
}
