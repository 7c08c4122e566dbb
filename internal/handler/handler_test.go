package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/domain"
	"github.com/familyalbum/album-backend/internal/gallery"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/migration"
	"github.com/familyalbum/album-backend/internal/notify"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/pkg/cache"
	"github.com/familyalbum/album-backend/pkg/i18n"
	"github.com/familyalbum/album-backend/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// pngBytes starts with the PNG signature so content sniffing reports image/png
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Meta    *common.Meta      `json:"meta"`
	Error   *common.ErrorInfo `json:"error"`
	Notices []notify.Notice   `json:"notices"`
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB

	members    repository.MemberRepository
	photos     repository.PhotoRepository
	events     repository.EventRepository
	categories repository.CategoryRepository
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.Run(db))
	return db
}

// signedIn stands in for JWTAuth in handler tests
func signedIn(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := setupTestDB(t)

	memberRepo := repository.NewMemberRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	c := cache.NewMemoryService()
	memberSvc := service.NewMemberService(memberRepo, c)
	photoSvc := service.NewPhotoService(photoRepo)
	eventSvc := service.NewEventService(eventRepo)
	memorySvc := service.NewMemoryService(repository.NewMemoryRepository(db))
	uploadSvc := service.NewUploadService(store, photoSvc, memberSvc, 1<<20)

	r := gin.New()
	r.Use(middleware.I18n(i18n.Default()), signedIn("user-1"))

	mh := NewMemberHandler(memberSvc, photoSvc, memorySvc, uploadSvc, 1<<20)
	r.GET("/members", mh.List)
	r.POST("/members", mh.Create)
	r.GET("/members/:id", mh.Get)
	r.PATCH("/members/:id", mh.Update)
	r.GET("/members/:id/profile", mh.Profile)
	r.GET("/members/:id/photos", mh.Photos)
	r.POST("/members/:id/avatar", mh.UploadAvatar)
	r.GET("/members/:id/memories", mh.ListMemories)
	r.POST("/members/:id/memories", mh.CreateMemory)

	memh := NewMemoryHandler(memorySvc)
	r.PUT("/memories/:id", memh.Update)
	r.DELETE("/memories/:id", memh.Delete)

	eh := NewEventHandler(eventSvc, photoSvc)
	r.GET("/events", eh.List)
	r.POST("/events", eh.Create)
	r.GET("/events/:id", eh.Get)
	r.GET("/events/:id/detail", eh.Detail)

	ph := NewPhotoHandler(photoSvc, uploadSvc, 1<<20)
	r.GET("/photos", ph.List)
	r.POST("/photos", ph.Upload)
	r.GET("/photos/:id", ph.Get)

	r.GET("/categories", NewCategoryHandler(service.NewCategoryService(categoryRepo, c)).List)

	posts := NewPostHandler(service.NewPostService(repository.NewPostRepository(db)))
	r.GET("/posts", posts.List)
	r.POST("/posts", posts.Create)

	vh := NewViewerHandler(gallery.NewSessions(c, photoSvc))
	r.GET("/viewer", vh.Get)
	r.POST("/viewer", vh.Open)
	r.POST("/viewer/next", vh.Next)
	r.POST("/viewer/prev", vh.Prev)
	r.POST("/viewer/keys", vh.Key)
	r.DELETE("/viewer", vh.Close)

	return &testServer{
		router:     r,
		db:         db,
		members:    memberRepo,
		photos:     photoRepo,
		events:     eventRepo,
		categories: categoryRepo,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func multipartRequest(t *testing.T, path string, fields map[string][]string, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (s *testServer) categoryID(t *testing.T, name string) string {
	t.Helper()
	var cat domain.PhotoCategory
	require.NoError(t, s.db.Where("name = ?", name).First(&cat).Error)
	return cat.ID
}

func (s *testServer) seedPhoto(t *testing.T, title, category string, taken time.Time, memberIDs ...string) *domain.FamilyPhoto {
	t.Helper()
	p := &domain.FamilyPhoto{Title: title, ImageURL: "/uploads/" + title + ".jpg", TakenDate: &taken}
	if category != "" {
		id := s.categoryID(t, category)
		p.CategoryID = &id
	}
	require.NoError(t, s.photos.Create(context.Background(), p, memberIDs))
	return p
}

func (s *testServer) seedEvent(t *testing.T, e *domain.FamilyEvent) *domain.FamilyEvent {
	t.Helper()
	require.NoError(t, s.events.Create(context.Background(), e))
	return e
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}
