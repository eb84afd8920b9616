package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"los/docs" // swagger docs
	"los/internal/cache"
	"los/internal/config"
	"los/internal/db"
	"los/internal/handler"
	"los/internal/logger"
	"los/internal/repository"
	"los/internal/router"
	"los/internal/service"
	"los/internal/storage"
)

// @title Loan Origination Borrower API
// @version 1.0
// @description Borrower profile CRUD with KYC document uploads.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormLevel := gormlogger.Warn
	if cfg.LogLevel == "debug" {
		gormLevel = gormlogger.Info
	}
	gormDB, err := db.NewMySQL(cfg.MySQLDSN, gormLevel)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatal("reset database", zap.Error(err))
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	roleService := service.NewRoleService(repository.NewRoleRepository(gormDB))
	created, err := roleService.SeedRoles(context.Background(), cfg.SeedRoles)
	if err != nil {
		log.Fatal("seed roles", zap.Error(err))
	}
	if created > 0 {
		log.Info("roles seeded", zap.Int("created", created))
	}

	sink, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload directory", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	cacheClient := connectCache(context.Background(), cfg, log)
	defer cacheClient.Close()

	userService := service.NewUserService(repository.NewUserRepository(gormDB), sink, cacheClient, log)

	userHandler := handler.NewUserHandler(userService, log)
	checks := map[string]handler.Check{
		"mysql": func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if cacheClient != nil {
		checks["redis"] = cacheClient.Ping
	}
	healthHandler := handler.NewHealthHandler(checks)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, userHandler, healthHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Info("swagger documentation available", zap.String("url", swaggerURL(cfg)))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}

// connectCache returns nil when caching is off or Redis does not answer, so
// requests never wait on an unreachable cache.
func connectCache(ctx context.Context, cfg *config.Config, log *zap.Logger) *cache.Client {
	if !cfg.CacheEnabled {
		return nil
	}
	client := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := client.Ping(ctx); err != nil {
		log.Warn("redis unreachable, serving without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		client.Close()
		return nil
	}
	return client
}

// swaggerURL builds the UI address. SwaggerHost may already carry a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
