package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

type Server struct {
	config  *Config
	api     *API
	metrics *Metrics
	echo    *echo.Echo
}

func NewServer(cfg *Config, api *API, metrics *Metrics, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	if logger != nil {
		e.Logger = logger
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))

	s := &Server{
		config:  cfg,
		api:     api,
		metrics: metrics,
		echo:    e,
	}

	e.GET("/", Homepage)
	e.GET("/healthz", healthz)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	e.POST("/search", s.resolveTrack)
	e.POST("/keyword-search", s.keywordSearch)
	e.POST("/check-track", s.checkTrack)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	return s.echo.Start(s.config.Addr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// A body that fails to bind is treated like an empty one, so the caller gets
// the usual "No ... provided" error instead of a transport error.
func bindOrEmpty(c echo.Context, dst any) {
	if err := c.Bind(dst); err != nil {
		c.Logger().Debugf("could not bind request body: %v", err)
	}
}

func (s *Server) resolveTrack(c echo.Context) error {
	var req ResolveRequest
	bindOrEmpty(c, &req)

	return c.JSON(http.StatusOK, s.api.ResolveTrack(req))
}

func (s *Server) keywordSearch(c echo.Context) error {
	var req KeywordSearchRequest
	bindOrEmpty(c, &req)

	return c.JSON(http.StatusOK, s.api.KeywordSearch(req))
}

func (s *Server) checkTrack(c echo.Context) error {
	var req CheckTrackRequest
	bindOrEmpty(c, &req)

	return c.JSON(http.StatusOK, s.api.CheckTrack(req))
}
