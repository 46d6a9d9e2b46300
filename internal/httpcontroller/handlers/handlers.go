// Package handlers contains the HTTP handler functions and their dependencies.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/logging"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/mediastore"
)

// Handlers holds the handler functions and their shared dependencies.
type Handlers struct {
	DS       datastore.Interface
	Settings *conf.Settings
	Media    *mediastore.Store

	logger *slog.Logger
}

// New creates a Handlers instance with the given dependencies.
func New(ds datastore.Interface, settings *conf.Settings, media *mediastore.Store) *Handlers {
	return &Handlers{
		DS:       ds,
		Settings: settings,
		Media:    media,
		logger:   logging.ForModule("handlers"),
	}
}

// ErrorPage carries the data for the generic error view.
type ErrorPage struct {
	Code    int
	Message string
}

// headerTitle resolves the configured display title, falling back to the
// default when the settings row is missing or unreadable.
func (h *Handlers) headerTitle() string {
	title, err := h.DS.GetSetting("header_title", conf.DefaultHeaderTitle)
	if err != nil {
		h.logger.Error("failed to read header title", "error", err)
		return conf.DefaultHeaderTitle
	}
	return title
}

// siteID parses the :id route parameter. ok is false when the parameter is
// not a positive integer; callers redirect rather than error.
func siteID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// redirect sends a see-other redirect after a form POST.
func redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusSeeOther, location)
}
