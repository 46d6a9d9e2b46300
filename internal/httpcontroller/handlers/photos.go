package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/datastore"
	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/mediastore"
)

// UploadPhoto handles POST /sites/:id/upload. The payload is written to the
// file store before the metadata row is inserted; a crash in between leaves
// an orphaned file rather than a dangling row.
func (h *Handlers) UploadPhoto(c echo.Context) error {
	id, ok := siteID(c)
	if !ok {
		setFlash(c, "Site not found.", "danger")
		return redirect(c, "/")
	}
	detailURL := fmt.Sprintf("/sites/%d", id)

	fileHeader, err := c.FormFile("photo")
	if err != nil || fileHeader.Filename == "" {
		setFlash(c, "No file selected.", "warning")
		return redirect(c, detailURL)
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", "error", err)
		setFlash(c, "Could not read uploaded file.", "danger")
		return redirect(c, detailURL)
	}
	defer src.Close()

	storageName, err := h.Media.Save(fileHeader.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, mediastore.ErrNoFile):
			setFlash(c, "No file selected.", "warning")
		case errors.Is(err, mediastore.ErrUnsupportedType):
			setFlash(c, "Unsupported file type.", "danger")
		default:
			h.logger.Error("failed to store upload", "error", err)
			setFlash(c, "Could not store uploaded file.", "danger")
		}
		return redirect(c, detailURL)
	}

	photo := datastore.Photo{
		SiteID:   id,
		Filename: storageName,
		Caption:  strings.TrimSpace(c.FormValue("caption")),
	}
	if err := h.DS.SavePhoto(&photo); err != nil {
		h.logger.Error("failed to save photo metadata", "filename", storageName, "error", err)
		setFlash(c, "Could not save photo.", "danger")
		return redirect(c, detailURL)
	}

	setFlash(c, "Photo uploaded.", "success")
	return redirect(c, detailURL)
}

// ServeUpload handles GET /uploads/:filename, streaming a stored photo. The
// filename is an opaque key; the media store refuses anything path-like.
func (h *Handlers) ServeUpload(c echo.Context) error {
	name := c.Param("filename")

	f, err := h.Media.Open(name)
	if err != nil {
		if errors.Is(err, mediastore.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not Found")
		}
		h.logger.Error("failed to open stored photo", "filename", name, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.Stream(http.StatusOK, contentType, f)
}
