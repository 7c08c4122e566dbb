package handler

import (
	"github.com/familyalbum/album-backend/internal/form"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MemoryHandler edits and deletes memories by id
type MemoryHandler struct {
	service service.MemoryService
}

// NewMemoryHandler creates a new MemoryHandler
func NewMemoryHandler(service service.MemoryService) *MemoryHandler {
	return &MemoryHandler{service: service}
}

// Update handles PUT /api/v1/memories/:id
func (h *MemoryHandler) Update(c *gin.Context) {
	var req MemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		badRequest(c, err)
		return
	}

	f := form.NewMemoryForm("")
	f.EditingID = c.Param("id")
	f.Fields = fields
	memory, err := f.Submit(c.Request.Context(), h.service, middleware.Notices(c))
	if err != nil {
		fail(c, middleware.T(c, "memory.save_failed"), err)
		return
	}
	ok(c, memory, nil)
}

// Delete handles DELETE /api/v1/memories/:id
func (h *MemoryHandler) Delete(c *gin.Context) {
	deleted, err := h.service.DeleteMemory(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "memory.delete_failed"))
		fail(c, middleware.T(c, "memory.delete_failed"), err)
		return
	}
	if deleted {
		middleware.Notices(c).Notify(notify.Success("memory.delete_success"))
	}
	ok(c, gin.H{"deleted": deleted}, nil)
}
