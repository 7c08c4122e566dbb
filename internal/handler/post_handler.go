package handler

import (
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// PostHandler serves family news posts
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePostRequest is the body of POST /posts
type CreatePostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Images      []string   `json:"images"`
	IsMilestone bool       `json:"is_milestone"`
	PostDate    *time.Time `json:"post_date"`
	Tags        []string   `json:"tags"`
}

// List handles GET /api/v1/posts?limit=
func (h *PostHandler) List(c *gin.Context) {
	res := h.service.ListPosts(c.Request.Context(), ginutil.QueryInt(c, "limit", 0))
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "error.fetch_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}

// Create handles POST /api/v1/posts. The author is the signed-in user.
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post := &domain.FamilyPost{
		Title:       req.Title,
		Content:     req.Content,
		Images:      req.Images,
		IsMilestone: req.IsMilestone,
		Tags:        req.Tags,
	}
	if userID := middleware.GetUserID(c); userID != "" {
		post.AuthorID = &userID
	}
	if req.PostDate != nil {
		post.PostDate = *req.PostDate
	}

	saved, err := h.service.CreatePost(c.Request.Context(), post)
	if err != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "post.create_failed"))
		fail(c, middleware.T(c, "post.create_failed"), err)
		return
	}

	middleware.Notices(c).Notify(notify.Success("post.create_success"))
	created(c, saved)
}
