package handlers

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
)

// AddNote handles POST /sites/:id/note. Blank bodies are a soft warning, not
// a failure.
func (h *Handlers) AddNote(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}
	detailURL := fmt.Sprintf("/sites/%d", id)

	note := datastore.Note{SiteID: id, Body: c.FormValue("body")}
	if err := h.DS.SaveNote(&note); err != nil {
		if errors.Is(err, datastore.ErrEmptyNote) {
			setFlash(c, "Note is empty.", "warning")
			return redirect(c, detailURL)
		}
		h.logger.Error("failed to save note", "id", id, "error", err)
		setFlash(c, "Could not add note.", "danger")
		return redirect(c, detailURL)
	}

	setFlash(c, "Note added.", "success")
	return redirect(c, detailURL)
}
