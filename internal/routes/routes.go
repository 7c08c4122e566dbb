package routes

import (
	"github.com/familyalbum/album-backend/internal/handler"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth     *handler.AuthHandler
	Member   *handler.MemberHandler
	Memory   *handler.MemoryHandler
	Event    *handler.EventHandler
	Photo    *handler.PhotoHandler
	Category *handler.CategoryHandler
	Post     *handler.PostHandler
	Viewer   *handler.ViewerHandler
	Health   *handler.HealthHandler
}

// WriteGuard is applied to every mutating family route
type WriteGuard struct {
	Limiter   middleware.Limiter
	RateLimit middleware.RateLimitConfig
	// MaxBodyBytes bounds request bodies; uploads get the upload limit plus form overhead
	MaxBodyBytes int64
}

// Setup configures all API routes
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, guard WriteGuard) {
	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", middleware.JWTAuth(jwtManager), h.Auth.Me)

	// 가족 데이터는 전부 로그인 필요
	family := api.Group("", middleware.JWTAuth(jwtManager))
	write := []gin.HandlerFunc{
		middleware.RateLimitPerUser(guard.Limiter, guard.RateLimit),
		middleware.BodyLimit(guard.MaxBodyBytes),
	}
	w := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), fn)
	}

	// Members
	members := family.Group("/members")
	members.GET("", h.Member.List)
	members.POST("", w(h.Member.Create)...)
	members.GET("/:id", h.Member.Get)
	members.PATCH("/:id", w(h.Member.Update)...)
	members.GET("/:id/profile", h.Member.Profile)
	members.GET("/:id/photos", h.Member.Photos)
	members.POST("/:id/avatar", w(h.Member.UploadAvatar)...)
	members.GET("/:id/memories", h.Member.ListMemories)
	members.POST("/:id/memories", w(h.Member.CreateMemory)...)

	// Memories
	memories := family.Group("/memories")
	memories.PUT("/:id", w(h.Memory.Update)...)
	memories.DELETE("/:id", w(h.Memory.Delete)...)

	// Events
	events := family.Group("/events")
	events.GET("", h.Event.List)
	events.POST("", w(h.Event.Create)...)
	events.GET("/:id", h.Event.Get)
	events.GET("/:id/detail", h.Event.Detail)

	// Photos (gallery)
	photos := family.Group("/photos")
	photos.GET("", h.Photo.List)
	photos.POST("", w(h.Photo.Upload)...)
	photos.GET("/:id", h.Photo.Get)

	family.GET("/categories", h.Category.List)

	// Posts
	posts := family.Group("/posts")
	posts.GET("", h.Post.List)
	posts.POST("", w(h.Post.Create)...)

	// Viewer (lightbox session)
	viewer := family.Group("/viewer")
	viewer.GET("", h.Viewer.Get)
	viewer.POST("", h.Viewer.Open)
	viewer.POST("/next", h.Viewer.Next)
	viewer.POST("/prev", h.Viewer.Prev)
	viewer.POST("/keys", h.Viewer.Key)
	viewer.DELETE("", h.Viewer.Close)
}
