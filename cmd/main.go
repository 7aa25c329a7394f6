package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"seungpyo.lee/BlogBackend/internal/config"
	"seungpyo.lee/BlogBackend/internal/handler"
	"seungpyo.lee/BlogBackend/internal/handler/page"
	"seungpyo.lee/BlogBackend/internal/repository"
	"seungpyo.lee/BlogBackend/internal/service"
	"seungpyo.lee/BlogBackend/internal/util"
	"seungpyo.lee/BlogBackend/pkg/jwt"
	"seungpyo.lee/BlogBackend/pkg/logger"
	"seungpyo.lee/BlogBackend/pkg/middleware"
)

func main() {
	cfg := config.LoadBlogConfig()
	log := logger.New(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := repository.Open(cfg.PostgresDSN, log, cfg.LogLevel == "debug", repository.PoolConfig{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		log.Fatal("failed to connect db", "error", err)
	}
	// auto migration
	if err := repository.Migrate(db); err != nil {
		log.Fatal("failed to migrate db", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", "error", err)
	}
	defer sqlDB.Close()

	tokenOpts := []jwt.Option{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatal("failed to connect redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
		tokenOpts = append(tokenOpts, jwt.WithRedis(rdb))
		log.Info("token revocation enabled", "redis", cfg.RedisAddr)
	}
	tokenManager := jwt.NewTokenManager(cfg.JWTSecretKey, tokenOpts...)

	if cfg.BlogOwnerID != 0 {
		log.Warn("BLOG_OWNER_ID is set: every new blog is assigned to a fixed owner instead of its author", "owner_id", cfg.BlogOwnerID)
	}

	tx := repository.NewTxManager(db)
	hasher := util.NewBcryptHasher(cfg.BcryptCost)
	ttl := cfg.AccessTokenDuration()

	authSvc := service.NewAuthService(tx, hasher, tokenManager, ttl)
	userSvc := service.NewUserService(tx, hasher)
	blogSvc := service.NewBlogService(tx, cfg.BlogOwnerID)

	r := gin.New()
	r.Use(middleware.RequestID(), logger.GinMiddleware(log), gin.Recovery())
	r.SetFuncMap(page.FuncMap(bluemonday.UGCPolicy()))
	r.LoadHTMLGlob(cfg.TemplateGlob)

	handler.SetupRoutes(r, handler.Handlers{
		Blog:   handler.NewBlogHandler(blogSvc, log),
		User:   handler.NewUserHandler(userSvc, log),
		Auth:   handler.NewAuthHandler(authSvc, log, cfg.LoginFailureStatus()),
		Health: handler.NewHealthHandler(sqlDB, log),
	}, middleware.AuthMiddleware(tokenManager))

	pageH := page.NewPageHandler(blogSvc, authSvc, log, ttl, cfg.LoginFailureStatus())
	page.SetupRoutes(r, pageH, middleware.PageAuthMiddleware(tokenManager, page.LoginPath))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("start blog server", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server stopped")
}
