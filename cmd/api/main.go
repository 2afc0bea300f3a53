package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/cache"
	"xcelliti-backend/internal/config"
	"xcelliti-backend/internal/content"
	"xcelliti-backend/internal/db"
	"xcelliti-backend/internal/handlers"
	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/uploads"
	"xcelliti-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "xcelliti-backend",
		}
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	server := &handlers.Server{
		Cfg:  cfg,
		Val:  val,
		Log:  logger,
		Auth: auth.NewService(auth.NewUserStore(cols.Users)),
		JWT:  jwtManager,
	}

	// Entities with a public display surface; contact submissions are wired
	// separately because they are create-only from the public side.
	resources := []content.ResourceHandler{
		content.NewHandler(content.NewServiceResource(cols.Services, cfg.Timezone), val, logger, cacheStore, cacheTTL),
		content.NewHandler(content.NewCaseStudyResource(cols.CaseStudies, cfg.Timezone), val, logger, cacheStore, cacheTTL),
		content.NewHandler(content.NewPartnerResource(cols.Partners, cfg.Timezone), val, logger, cacheStore, cacheTTL),
		content.NewHandler(content.NewJobPostingResource(cols.JobPostings, cfg.Timezone), val, logger, cacheStore, cacheTTL),
		content.NewHandler(content.NewBlogArticleResource(cols.BlogArticles, cfg.Timezone), val, logger, cacheStore, cacheTTL),
		content.NewHandler(content.NewClientResource(cols.Clients, cfg.Timezone), val, logger, cacheStore, cacheTTL),
	}
	contactHandler := content.NewHandler(content.NewContactSubmissionResource(cols.ContactSubmissions, cfg.Timezone), val, logger, cacheStore, cacheTTL)

	cloudinary := uploads.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if cloudinary == nil {
		logger.Info("cloudinary uploads disabled")
	}
	uploadHandler := uploads.NewHandler(cloudinary, logger)

	metrics := middleware.NewMetrics()

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	uploadLimiter := middleware.NewRateLimiter(cfg.RateLimitUpload, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		for _, res := range resources {
			api.Get("/"+res.Name(), res.PublicList)
		}
		api.With(contactLimiter.Middleware).Post("/contact-submissions", contactHandler.PublicCreate)
		api.With(uploadLimiter.Middleware).Post("/upload", uploadHandler.Upload)

		api.Route("/auth", func(a chi.Router) {
			a.Post("/login", server.Login)
			a.Post("/refresh", server.Refresh)
			a.Post("/logout", server.Logout)
			a.With(middleware.AdminAuth(jwtManager)).Get("/session", server.Session)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.AdminAuth(jwtManager))
			for _, res := range resources {
				admin.Get("/"+res.Name(), res.AdminList)
				admin.Post("/"+res.Name(), res.AdminCreate)
				admin.Put("/"+res.Name()+"/{id}", res.AdminUpdate)
				admin.Delete("/"+res.Name()+"/{id}", res.AdminDelete)
			}
			admin.Get("/contact-submissions", contactHandler.AdminList)
			admin.Delete("/contact-submissions/{id}", contactHandler.AdminDelete)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
