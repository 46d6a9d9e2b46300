package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Flash is a one-shot feedback message shown on the next rendered page.
// Category matches the alert styles used by the views: success, info,
// warning or danger.
type Flash struct {
	Message  string
	Category string
}

const flashCookieName = "wellatlas_flash"

// setFlash stores a flash message in a short-lived cookie. The value is
// base64 encoded so arbitrary message text survives the cookie header.
func setFlash(c echo.Context, message, category string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c echo.Context) []Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Expire the cookie so the message shows exactly once.
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return []Flash{{Message: message, Category: category}}
}
