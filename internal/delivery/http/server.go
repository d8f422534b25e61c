// Package http serves the local ops endpoints: health, Prometheus metrics and the auth engine.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"

	"textura/config"
	"textura/internal/delivery"
	"textura/internal/delivery/http/middleware"
	"textura/internal/delivery/http/router"
	"textura/internal/delivery/http/validator"
)

const (
	readHeaderTimeout  = 5 * time.Second
	idleTimeout        = 60 * time.Second
	shutdownTimeout    = 10 * time.Second
	maxRequestBodySize = "64K"
)

type httpServer struct {
	addr   string
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer creates the ops server. It listens on metrics.listenAddr and stays idle when that is empty.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &httpServer{
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.RouterParams),
	}
	if params.Cfg.Metrics != nil {
		srv.addr = params.Cfg.Metrics.ListenAddr
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadHeaderTimeout = readHeaderTimeout
	echoServer.Server.IdleTimeout = idleTimeout

	// Recover first, request id before the logger so log lines carry it
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	echoServer.Use(echomiddleware.BodyLimit(maxRequestBodySize))

	echoServer.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()

	router.NewRouter(routerParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	if s.addr == "" {
		s.logger.Info("Ops HTTP server disabled")

		return nil
	}

	s.logger.Info("Starting ops HTTP server", slog.String("listen_addr", s.addr))
	h2Server := &http2.Server{
		IdleTimeout: idleTimeout,
	}
	if err := s.server.StartH2CServer(s.addr, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	if s.addr == "" {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down ops HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
