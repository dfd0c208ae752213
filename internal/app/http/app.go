package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "snapfolio/docs"
	"snapfolio/internal/lib/logger/sl"
	custommw "snapfolio/internal/middleware"
	transport "snapfolio/internal/transport/http"
)

type App struct {
	log  *slog.Logger
	echo *echo.Echo
	host string
	port string
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func New(log *slog.Logger, routers *transport.Routers, health func(context.Context) error, host, port string) *App {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(custommw.PrometheusMetrics)

	e.GET("/health", func(c echo.Context) error {
		if err := health(c.Request().Context()); err != nil {
			log.Error("health check failed", sl.Err(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swag/swagger/*", echoSwagger.WrapHandler)

	buildRouters(e, routers)

	return &App{
		log:  log,
		echo: e,
		host: host,
		port: port,
	}
}

func buildRouters(e *echo.Echo, r *transport.Routers) {
	api := e.Group("/api/v1")

	api.POST("/galleries", r.CreateGallery)
	api.GET("/galleries", r.ListGalleries)
	api.GET("/galleries/:id", r.GetGallery)
	api.POST("/galleries/check-duplicate", r.CheckDuplicate)
	api.POST("/galleries/folder", r.AttachFolder)

	api.POST("/provider/folder", r.CreateProviderFolder)
	api.POST("/provider/upload", r.UploadAsset)

	api.POST("/items", r.CreateItem)
	api.PATCH("/items/:id", r.UpdateItem)

	api.PATCH("/comments/:id", r.UpdateComment)
	api.PATCH("/reactions/:id", r.UpdateReaction)
	api.PATCH("/shares/:id", r.UpdateShare)

	api.GET("/dashboard/summary", r.DashboardSummary)
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "httpapp.Run"

	addr := fmt.Sprintf("%s:%s", a.host, a.port)

	a.log.Info("starting http server", slog.String("addr", addr))

	if err := a.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop() {
	const op = "httpapp.Stop"

	log := a.log.With(slog.String("op", op))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.echo.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown http server gracefully", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}
