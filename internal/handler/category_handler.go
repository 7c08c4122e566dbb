package handler

import (
	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CategoryHandler serves photo categories
type CategoryHandler struct {
	service service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	res := h.service.ListWithCounts(c.Request.Context())
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "error.fetch_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}
