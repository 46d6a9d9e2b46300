package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/kml"
)

// ImportKML handles POST /import/kml. A document that fails to parse creates
// nothing; once parsed, each placemark is persisted with its own insert, so
// a crash mid-import can leave a partial batch. A document with zero
// placemarks imports zero sites and still reports success.
func (h *Handlers) ImportKML(c echo.Context) error {
	fileHeader, err := c.FormFile("kmlfile")
	if err != nil || fileHeader.Filename == "" {
		setFlash(c, "No KML file selected.", "warning")
		return redirect(c, "/")
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open KML upload", "error", err)
		setFlash(c, "Could not read KML file.", "danger")
		return redirect(c, "/")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error("failed to read KML upload", "error", err)
		setFlash(c, "Could not read KML file.", "danger")
		return redirect(c, "/")
	}

	placemarks, err := kml.Parse(content)
	if err != nil {
		if !errors.Is(err, kml.ErrMalformed) {
			h.logger.Error("failed to parse KML", "error", err)
		}
		setFlash(c, "Invalid KML file.", "danger")
		return redirect(c, "/")
	}

	imported := 0
	for _, pm := range placemarks {
		site := datastore.Site{
			Name:        pm.Name,
			Description: "Imported from KML",
			Latitude:    pm.Latitude,
			Longitude:   pm.Longitude,
		}
		if err := h.DS.SaveSite(&site); err != nil {
			h.logger.Error("failed to save imported site", "name", pm.Name, "error", err)
			continue
		}
		imported++
	}

	setFlash(c, fmt.Sprintf("Imported %d placemark(s).", imported), "success")
	return redirect(c, "/")
}
