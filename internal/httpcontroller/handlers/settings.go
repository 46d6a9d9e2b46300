package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
)

// settingsPage carries the data for the settings view.
type settingsPage struct {
	HeaderTitle string
	Flashes     []Flash
}

// SettingsPage handles GET /settings.
func (h *Handlers) SettingsPage(c echo.Context) error {
	return c.Render(http.StatusOK, "settings", settingsPage{
		HeaderTitle: h.headerTitle(),
		Flashes:     takeFlash(c),
	})
}

// UpdateSettings handles POST /settings. A blank title resets to the
// default; the response always redirects back to the settings page.
func (h *Handlers) UpdateSettings(c echo.Context) error {
	title := strings.TrimSpace(c.FormValue("header_title"))
	if title == "" {
		title = conf.DefaultHeaderTitle
	}

	if err := h.DS.SetSetting("header_title", title); err != nil {
		h.logger.Error("failed to update header title", "error", err)
		setFlash(c, "Could not update header.", "danger")
		return redirect(c, "/settings")
	}

	setFlash(c, "Header updated.", "success")
	return redirect(c, "/settings")
}
