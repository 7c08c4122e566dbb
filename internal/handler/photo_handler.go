package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/form"
	"github.com/familyalbum/album-backend/internal/gallery"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

const (
	defaultPerPage = 24
	maxPerPage     = 100
)

// PhotoHandler serves the gallery and photo uploads
type PhotoHandler struct {
	photos   service.PhotoService
	uploads  service.UploadService
	maxBytes int64
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photos service.PhotoService, uploads service.UploadService, maxBytes int64) *PhotoHandler {
	return &PhotoHandler{photos: photos, uploads: uploads, maxBytes: maxBytes}
}

// PhotoPage is one page of the filtered gallery
type PhotoPage struct {
	Photos         []*domain.FamilyPhoto `json:"photos"`
	Criteria       gallery.Criteria      `json:"criteria"`
	CategoryCounts map[string]int        `json:"category_counts"`
}

// List handles GET /api/v1/photos?q=&category=&page=&per_page=
// Category counts are taken over the query match alone so the tabs keep their numbers
// while a category is selected.
func (h *PhotoHandler) List(c *gin.Context) {
	criteria := gallery.Criteria{Query: c.Query("q"), Category: c.Query("category")}
	page, perPage := ginutil.Paging(c, defaultPerPage, maxPerPage)

	res := h.photos.ListPhotos(c.Request.Context())
	if !res.OK() {
		common.FetchFailedResponse(c, middleware.T(c, "error.fetch_failed"), res.Data)
		return
	}

	matched := gallery.Filter(res.Data, criteria)
	counts := gallery.CountByCategory(gallery.Filter(res.Data, gallery.Criteria{
		Query:    criteria.Query,
		Category: gallery.AllCategories,
	}))

	total := len(matched)
	ok(c, PhotoPage{
		Photos:         gallery.Paginate(matched, page, perPage),
		Criteria:       criteria,
		CategoryCounts: counts,
	}, &common.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      int64(total),
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// Get handles GET /api/v1/photos/:id
func (h *PhotoHandler) Get(c *gin.Context) {
	res := h.photos.GetPhoto(c.Request.Context(), c.Param("id"))
	if !res.OK() {
		if statusFor(res.Err) == http.StatusNotFound {
			notFound(c, "error.not_found", res.Err)
			return
		}
		fail(c, middleware.T(c, "error.fetch_failed"), res.Err)
		return
	}
	ok(c, res.Data, nil)
}

// Upload handles POST /api/v1/photos (multipart: file, title, description,
// category_id, taken_date, location, people[], member_ids[])
func (h *PhotoHandler) Upload(c *gin.Context) {
	file, err := readFile(c, "file", h.maxBytes)
	if err != nil {
		fail(c, middleware.T(c, "photo.upload_failed"), err)
		return
	}

	f := form.NewPhotoUploadForm()
	defer f.Close()
	f.Title = c.PostForm("title")
	f.Description = c.PostForm("description")
	f.CategoryID = c.PostForm("category_id")
	f.Location = c.PostForm("location")
	f.MemberIDs = c.PostFormArray("member_ids")
	for _, name := range c.PostFormArray("people") {
		f.People.Add(name)
	}
	if raw := strings.TrimSpace(c.PostForm("taken_date")); raw != "" {
		taken, err := time.Parse(dateLayout, raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		f.TakenDate = &taken
	}

	if file != nil {
		if err := f.SelectFile(file); err != nil {
			middleware.Notices(c).Notify(notify.Failure("photo.upload_title", "photo.not_image"))
			fail(c, middleware.T(c, "photo.not_image"), err)
			return
		}
	}

	photo, err := f.Submit(c.Request.Context(), h.uploads, middleware.Notices(c))
	if err != nil {
		fail(c, middleware.T(c, "photo.upload_failed"), err)
		return
	}
	created(c, photo)
}
