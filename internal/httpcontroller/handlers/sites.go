package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
)

// homePage carries the data for the index view.
type homePage struct {
	HeaderTitle string
	Flashes     []Flash
}

// sitePage carries the data for the site detail view.
type sitePage struct {
	HeaderTitle string
	Flashes     []Flash
	Site        datastore.Site
	Photos      []datastore.Photo
	Notes       []datastore.Note
}

// deletedPage carries the data for the deleted sites view.
type deletedPage struct {
	HeaderTitle string
	Flashes     []Flash
	Sites       []datastore.Site
}

// Home renders the index view with the configured display title.
func (h *Handlers) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index", homePage{
		HeaderTitle: h.headerTitle(),
		Flashes:     takeFlash(c),
	})
}

// siteForm reads the site form fields. A blank name falls back to
// "Untitled Site"; coordinates that fail to parse fall back to 0.0 without
// surfacing an error. When either coordinate is unparseable both are zeroed.
func siteForm(c echo.Context) datastore.Site {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		name = "Untitled Site"
	}

	lat, latErr := parseCoordinate(c.FormValue("latitude"))
	lon, lonErr := parseCoordinate(c.FormValue("longitude"))
	if latErr != nil || lonErr != nil {
		lat, lon = 0.0, 0.0
	}

	return datastore.Site{
		Name:        name,
		JobNumber:   strings.TrimSpace(c.FormValue("job_number")),
		Customer:    strings.TrimSpace(c.FormValue("customer")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Latitude:    lat,
		Longitude:   lon,
	}
}

// parseCoordinate parses a form coordinate. An empty value is 0.0.
func parseCoordinate(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0.0, nil
	}
	return strconv.ParseFloat(value, 64)
}

// CreateSite handles POST /sites/create.
func (h *Handlers) CreateSite(c echo.Context) error {
	site := siteForm(c)
	if err := h.DS.SaveSite(&site); err != nil {
		h.logger.Error("failed to create site", "error", err)
		setFlash(c, "Could not create site.", "danger")
		return redirect(c, "/")
	}

	setFlash(c, "Site created.", "success")
	return redirect(c, fmt.Sprintf("/sites/%d", site.ID))
}

// SiteDetail handles GET /sites/:id. A missing site redirects home with a
// message instead of erroring.
func (h *Handlers) SiteDetail(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}

	site, err := h.DS.GetSite(id)
	if err != nil {
		if !errors.Is(err, datastore.ErrSiteNotFound) {
			h.logger.Error("failed to load site", "id", id, "error", err)
		}
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}

	photos, err := h.DS.GetPhotos(id)
	if err != nil {
		h.logger.Error("failed to load photos", "id", id, "error", err)
	}
	notes, err := h.DS.GetNotes(id)
	if err != nil {
		h.logger.Error("failed to load notes", "id", id, "error", err)
	}

	return c.Render(http.StatusOK, "site_detail", sitePage{
		HeaderTitle: h.headerTitle(),
		Flashes:     takeFlash(c),
		Site:        site,
		Photos:      photos,
		Notes:       notes,
	})
}

// EditSite handles POST /sites/:id/edit. Editing an id that does not exist
// is a silent no-op apart from the redirect.
func (h *Handlers) EditSite(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}

	site := siteForm(c)
	site.ID = id
	if err := h.DS.UpdateSite(&site); err != nil {
		h.logger.Error("failed to update site", "id", id, "error", err)
		setFlash(c, "Could not update site.", "danger")
		return redirect(c, fmt.Sprintf("/sites/%d", id))
	}

	setFlash(c, "Site updated.", "success")
	return redirect(c, fmt.Sprintf("/sites/%d", id))
}

// DeleteSite handles POST /sites/:id/delete. Soft delete only; the record
// stays restorable from the deleted list.
func (h *Handlers) DeleteSite(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}

	if err := h.DS.SoftDeleteSite(id); err != nil {
		h.logger.Error("failed to delete site", "id", id, "error", err)
		setFlash(c, "Could not delete site.", "danger")
		return redirect(c, "/")
	}

	setFlash(c, "Site moved to Deleted Sites.", "info")
	return redirect(c, "/")
}

// DeletedSites handles GET /deleted.
func (h *Handlers) DeletedSites(c echo.Context) error {
	sites, err := h.DS.SearchSites(datastore.SiteDeleted, "")
	if err != nil {
		h.logger.Error("failed to list deleted sites", "error", err)
	}

	return c.Render(http.StatusOK, "deleted_sites", deletedPage{
		HeaderTitle: h.headerTitle(),
		Flashes:     takeFlash(c),
		Sites:       sites,
	})
}

// RestoreSite handles POST /sites/:id/restore.
func (h *Handlers) RestoreSite(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/deleted")
	}

	if err := h.DS.RestoreSite(id); err != nil {
		h.logger.Error("failed to restore site", "id", id, "error", err)
		setFlash(c, "Could not restore site.", "danger")
		return redirect(c, "/deleted")
	}

	setFlash(c, "Site restored.", "success")
	return redirect(c, "/deleted")
}
