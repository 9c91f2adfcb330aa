package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/pkg/logger"
)

// Server is the JSON facade over the recommendation pipeline.
type Server struct {
	echo    *echo.Echo
	cfg     config.HTTPConfig
	handler *Handler
}

// New creates the HTTP server and registers all routes.
func New(cfg config.HTTPConfig, handler *Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{echo: e, cfg: cfg, handler: handler}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	h := s.handler

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/news", h.News)
	e.GET("/sentiment", h.Sentiment)
	e.GET("/recommendations", h.Recommendations)
	e.GET("/price_chart", h.PriceChart)
	e.GET("/technical/:ticker", h.Technical)
	e.GET("/fundamental/:ticker", h.Fundamental)
	e.GET("/compare", h.Compare)
	e.POST("/run-daily-report", h.RunDailyReport)
}

// Start serves until the listener fails. Blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Info("http server starting", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
