package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"los/internal/config"
	"los/internal/handler"
)

// Preflight and response CORS headers. Static by contract: any origin,
// credentials allowed.
const (
	corsAllowOrigin      = "*"
	corsAllowMethods     = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders     = "Content-Type, Authorization"
	corsAllowCredentials = "true"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(CORSHeaders())
	if cfg.MaxUploadMB > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	}

	e.GET("/healthz", healthHandler.Live)
	e.GET("/readyz", healthHandler.Ready)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	users := api.Group("/users")
	users.OPTIONS("", userHandler.Options)
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.OPTIONS("/:id", userHandler.Options)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)
}

// CORSHeaders attaches the static cross-origin headers to every response,
// errors included.
func CORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
			header.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
			header.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
			header.Set(echo.HeaderAccessControlAllowCredentials, corsAllowCredentials)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if v.Status >= http.StatusInternalServerError {
				log.Error("HTTP request", fields...)
				return nil
			}
			log.Info("HTTP request", fields...)
			return nil
		},
	})
}
