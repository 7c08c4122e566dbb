package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/familyalbum/album-backend/internal/config"
	"github.com/familyalbum/album-backend/internal/gallery"
	"github.com/familyalbum/album-backend/internal/handler"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/migration"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/internal/routes"
	"github.com/familyalbum/album-backend/internal/service"
	pkgcache "github.com/familyalbum/album-backend/pkg/cache"
	"github.com/familyalbum/album-backend/pkg/i18n"
	"github.com/familyalbum/album-backend/pkg/jwt"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
	pkgredis "github.com/familyalbum/album-backend/pkg/redis"
	pkgstorage "github.com/familyalbum/album-backend/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath(env string) string {
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	// 로거 초기화
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath(env)
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	// MySQL 연결 (앨범은 DB 없이 동작할 수 없음)
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis 연결
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing with in-process cache)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
		}
	}

	// Cache + rate limiter: Redis 가 없으면 프로세스 내부 구현으로 대체
	rateCfg := middleware.DefaultRateLimitConfig()
	rateCfg.RequestsPerMinute = cfg.Upload.WritesPerMinute

	var cacheService pkgcache.Service
	var limiter middleware.Limiter
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		limiter = middleware.NewRedisLimiter(redisClient, rateCfg.RequestsPerMinute)
	} else {
		cacheService = pkgcache.NewMemoryService()
		limiter = middleware.NewMemoryLimiter(rateCfg.RequestsPerMinute)
	}

	// Object storage: S3-compatible, or a local directory served under /uploads
	store, localDir := initStorage(cfg)

	// JWT Manager
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Services
	memberService := service.NewMemberService(memberRepo, cacheService)
	photoService := service.NewPhotoService(photoRepo)
	eventService := service.NewEventService(repository.NewEventRepository(db))
	memoryService := service.NewMemoryService(repository.NewMemoryRepository(db))
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db), cacheService)
	postService := service.NewPostService(repository.NewPostRepository(db))
	authService := service.NewAuthService(repository.NewUserRepository(db), jwtManager)
	uploadService := service.NewUploadService(store, photoService, memberService, cfg.Upload.MaxBytes())

	// Handlers
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	checks := map[string]handler.Pinger{"db": handler.PingFunc(sqlDB.PingContext)}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	handlers := routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, !cfg.IsDevelopment(), cfg.JWT.RefreshIn),
		Member:   handler.NewMemberHandler(memberService, photoService, memoryService, uploadService, cfg.Upload.MaxBytes()),
		Memory:   handler.NewMemoryHandler(memoryService),
		Event:    handler.NewEventHandler(eventService, photoService),
		Photo:    handler.NewPhotoHandler(photoService, uploadService, cfg.Upload.MaxBytes()),
		Category: handler.NewCategoryHandler(categoryService),
		Post:     handler.NewPostHandler(postService),
		Viewer:   handler.NewViewerHandler(gallery.NewSessions(cacheService, photoService)),
		Health:   handler.NewHealthHandler(checks),
	}

	// Gin 라우터 생성
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS 설정
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "Content-Language"},
		MaxAge:           12 * time.Hour,
	}))

	// i18n Bundle
	i18nBundle := i18n.Default()
	if _, err := os.Stat("i18n"); err == nil {
		if err := i18nBundle.LoadDir("i18n"); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.I18n(i18nBundle))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())

	if localDir != "" {
		router.Static(cfg.Storage.LocalBaseURL, localDir)
	}

	routes.Setup(router, handlers, jwtManager, routes.WriteGuard{
		Limiter:   limiter,
		RateLimit: rateCfg,
		// multipart 헤더/필드 여유분 1MB
		MaxBodyBytes: cfg.Upload.MaxBytes() + 1<<20,
	})

	go reportDBConnections(sqlDB.Stats, 15*time.Second)

	// 서버 시작
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initStorage picks S3 when configured, otherwise a local directory. The second
// return value is the directory to serve statically, empty for S3.
func initStorage(cfg *config.Config) (service.ObjectStore, string) {
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		s3Client, err := pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err == nil {
			pkglogger.Info("Connected to S3 storage")
			return s3Client, ""
		}
		pkglogger.Warn("S3 storage init failed: %v (falling back to local storage)", err)
	}

	local, err := pkgstorage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.LocalBaseURL)
	if err != nil {
		log.Fatalf("Failed to init local storage: %v", err)
	}
	pkglogger.Info("Using local storage at %s", cfg.Storage.LocalDir)
	return local, cfg.Storage.LocalDir
}

// reportDBConnections periodically publishes the open connection gauge
func reportDBConnections(stats func() sql.DBStats, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		middleware.SetDBConnectionsOpen(stats().OpenConnections)
	}
}

// initDB MySQL 연결 초기화
func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("DSN 파싱 실패: %w", err)
	}
	if mysqlCfg.Params == nil {
		mysqlCfg.Params = map[string]string{}
	}
	// DB 세션과 드라이버 모두 UTC 로 맞춤
	mysqlCfg.Params["time_zone"] = "'+00:00'"
	mysqlCfg.Loc = time.UTC

	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
