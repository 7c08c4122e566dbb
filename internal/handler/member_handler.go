package handler

import (
	"net/http"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/form"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/internal/viewmodel"
	"github.com/gin-gonic/gin"
)

// MemberHandler serves family members, their profile tabs, avatars and memories
type MemberHandler struct {
	members  service.MemberService
	photos   service.PhotoService
	memories service.MemoryService
	uploads  service.UploadService
	profiles *viewmodel.MemberProfileBuilder
	maxBytes int64
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(
	members service.MemberService,
	photos service.PhotoService,
	memories service.MemoryService,
	uploads service.UploadService,
	maxBytes int64,
) *MemberHandler {
	return &MemberHandler{
		members:  members,
		photos:   photos,
		memories: memories,
		uploads:  uploads,
		profiles: viewmodel.NewMemberProfileBuilder(members, photos, memories),
		maxBytes: maxBytes,
	}
}

// CreateMemberRequest is the body of POST /members
type CreateMemberRequest struct {
	Name         string   `json:"name" binding:"required"`
	Nickname     *string  `json:"nickname"`
	Relationship *string  `json:"relationship"`
	Birthday     *string  `json:"birthday"`
	Bio          *string  `json:"bio"`
	FunFacts     []string `json:"fun_facts"`
}

// UpdateMemberRequest is the body of PATCH /members/:id; absent fields are kept
type UpdateMemberRequest struct {
	Name         *string  `json:"name"`
	Relationship *string  `json:"relationship"`
	Birthday     *string  `json:"birthday"`
	Bio          *string  `json:"bio"`
	FunFacts     []string `json:"fun_facts"`
}

// MemoryRequest is the body of memory create/update
type MemoryRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	MemoryDate *string `json:"memory_date"`
	Location   *string `json:"location"`
	IsFavorite bool    `json:"is_favorite"`
}

func (r *MemoryRequest) fields() (domain.MemoryFields, error) {
	date, err := parseDate(r.MemoryDate)
	if err != nil {
		return domain.MemoryFields{}, err
	}
	return domain.MemoryFields{
		Title:      r.Title,
		Content:    r.Content,
		MemoryDate: date,
		Location:   r.Location,
		IsFavorite: r.IsFavorite,
	}, nil
}

// List handles GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	res := h.members.ListMembers(c.Request.Context())
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "member.load_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}

// Create handles POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	birthday, err := parseDate(req.Birthday)
	if err != nil {
		badRequest(c, err)
		return
	}

	member, err := h.members.CreateMember(c.Request.Context(), &domain.FamilyMember{
		Name:         req.Name,
		Nickname:     req.Nickname,
		Relationship: req.Relationship,
		Birthday:     birthday,
		Bio:          req.Bio,
		FunFacts:     req.FunFacts,
	})
	if err != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "member.create_failed"))
		fail(c, middleware.T(c, "member.create_failed"), err)
		return
	}

	middleware.Notices(c).Notify(notify.Success("member.create_success"))
	created(c, member)
}

// Get handles GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	res := h.members.GetMember(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		h.memberFailed(c, res.Err)
		return
	}
	ok(c, res.Data, nil)
}

func (h *MemberHandler) memberFailed(c *gin.Context, err error) {
	if statusFor(err) == http.StatusNotFound {
		notFound(c, "member.not_found", err)
		return
	}
	fail(c, middleware.T(c, "member.load_failed"), err)
}

// Update handles PATCH /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	birthday, err := parseDate(req.Birthday)
	if err != nil {
		badRequest(c, err)
		return
	}

	f := form.NewMemberEditForm(c.Param("id"))
	f.Name, f.Relationship, f.Birthday, f.Bio = req.Name, req.Relationship, birthday, req.Bio
	f.FunFacts = req.FunFacts

	member, err := f.Submit(c.Request.Context(), h.members, middleware.Notices(c))
	if err != nil {
		fail(c, middleware.T(c, "member.update_failed"), err)
		return
	}
	ok(c, member, nil)
}

// Profile handles GET /api/v1/members/:id/profile?tab=
func (h *MemberHandler) Profile(c *gin.Context) {
	page, err := h.profiles.Build(c.Request.Context(), c.Param("id"), c.Query("tab"))
	if err != nil {
		h.memberFailed(c, err)
		return
	}
	if page.LoadErr != nil {
		middleware.Notices(c).Notify(notify.Failure("notice.error", "error.fetch_failed"))
	}
	ok(c, page, nil)
}

// Photos handles GET /api/v1/members/:id/photos
func (h *MemberHandler) Photos(c *gin.Context) {
	res := h.photos.ListPhotosForMember(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "error.fetch_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}

// UploadAvatar handles POST /api/v1/members/:id/avatar (multipart field "file")
func (h *MemberHandler) UploadAvatar(c *gin.Context) {
	file, err := readFile(c, "file", h.maxBytes)
	if err != nil {
		fail(c, middleware.T(c, "member.avatar_failed"), err)
		return
	}

	f := form.NewAvatarForm(c.Param("id"))
	defer f.Close()
	if file != nil {
		if err := f.SelectFile(file); err != nil {
			middleware.Notices(c).Notify(notify.Failure("notice.error", "photo.not_image"))
			fail(c, middleware.T(c, "photo.not_image"), err)
			return
		}
	}

	member, err := f.Submit(c.Request.Context(), h.uploads, middleware.Notices(c))
	if err != nil {
		fail(c, middleware.T(c, "member.avatar_failed"), err)
		return
	}
	ok(c, member, nil)
}

// ListMemories handles GET /api/v1/members/:id/memories
func (h *MemberHandler) ListMemories(c *gin.Context) {
	res := h.memories.ListForMember(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "error.fetch_failed"), res.Data)
		return
	}
	ok(c, res.Data, &common.Meta{Total: int64(len(res.Data))})
}

// CreateMemory handles POST /api/v1/members/:id/memories
func (h *MemberHandler) CreateMemory(c *gin.Context) {
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

	// 구성원이 없으면 추억을 만들지 않음
	if res := h.members.GetMember(c.Request.Context(), c.Param("id")); !res.OK() {
		h.memberFailed(c, res.Err)
		return
	}

	f := form.NewMemoryForm(c.Param("id"))
	f.Fields = fields
	memory, err := f.Submit(c.Request.Context(), h.memories, middleware.Notices(c))
	if err != nil {
		fail(c, middleware.T(c, "memory.save_failed"), err)
		return
	}
	created(c, memory)
}
