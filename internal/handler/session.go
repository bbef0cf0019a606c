package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"miniblog/internal/models"
)

const (
	SessionCookieName = "session"
	FlashCookieName   = "flash"
)

type contextKey string

// CurrentUserKey holds the resolved *models.User for authenticated
// requests; absent means Anonymous.
const CurrentUserKey contextKey = "currentUser"

// CurrentUser returns the authenticated user for the request, or nil.
func CurrentUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(CurrentUserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser puts the resolved user on the request context.
func WithUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CurrentUserKey, user))
}

// SetSessionCookie writes the signed session token. maxAge zero makes a
// browser-session cookie; "remember me" passes a positive duration.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
	}
	http.SetCookie(w, cookie)
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads the flash message and clears the cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
