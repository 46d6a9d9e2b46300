package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
)

// APISites handles GET /api/sites. It returns all non-deleted sites as JSON,
// optionally filtered by the q query parameter as a case-insensitive
// substring over name, job number, customer and description.
func (h *Handlers) APISites(c echo.Context) error {
	sites, err := h.DS.SearchSites(datastore.SiteActive, c.QueryParam("q"))
	if err != nil {
		h.logger.Error("failed to search sites", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	if sites == nil {
		sites = []datastore.Site{}
	}
	return c.JSON(http.StatusOK, sites)
}
