// internal/httpcontroller/server.go
package httpcontroller

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/httpcontroller/handlers"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/logging"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/mediastore"
)

// Server encapsulates the Echo server and its dependencies.
type Server struct {
	Echo     *echo.Echo
	DS       datastore.Interface
	Settings *conf.Settings
	Media    *mediastore.Store
	Handlers *handlers.Handlers

	webLogger *slog.Logger
}

// New initializes a new HTTP server with the given settings and stores.
func New(settings *conf.Settings, ds datastore.Interface, media *mediastore.Store) *Server {
	s := &Server{
		Echo:      echo.New(),
		DS:        ds,
		Settings:  settings,
		Media:     media,
		webLogger: logging.ForModule("http"),
	}

	s.Handlers = handlers.New(ds, settings, media)

	s.initializeServer()
	return s
}

// initializeServer configures middleware, templates and routes.
func (s *Server) initializeServer() {
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	s.Echo.Use(middleware.Recover())
	// Bound request bodies so uploads cannot exhaust the host.
	s.Echo.Use(middleware.BodyLimit(fmt.Sprintf("%dM", s.Settings.MaxUploadMB)))
	s.Echo.Use(s.requestLogger())

	s.Echo.HTTPErrorHandler = s.handleHTTPError

	s.setupTemplateRenderer()
	s.initRoutes()
}

// Start begins listening and serving HTTP requests. It blocks until the
// server stops.
func (s *Server) Start() error {
	addr := s.Settings.WebServer.Host + ":" + s.Settings.WebServer.Port
	s.webLogger.Info("starting web server", "address", addr)

	if err := s.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.webLogger.Info("shutting down web server")
	return s.Echo.Shutdown(ctx)
}

// requestLogger emits one structured log line per request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.webLogger.Error("request failed",
					"method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
			} else {
				s.webLogger.Debug("request",
					"method", v.Method, "uri", v.URI, "status", v.Status)
			}
			return nil
		},
	})
}

// handleHTTPError renders unmatched routes and other HTTP failures as the
// generic error page.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}
	if code == http.StatusNotFound {
		message = "Not Found"
	}

	data := handlers.ErrorPage{Code: code, Message: message}
	if renderErr := c.Render(code, "error", data); renderErr != nil {
		s.webLogger.Error("failed to render error page", "error", renderErr)
		_ = c.String(code, message)
	}
}
