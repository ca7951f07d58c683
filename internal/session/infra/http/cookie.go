package http

import (
	"net/http"
	"time"
)

const sessionCookieName = "qst"

func NewSessionCookie(token string, validTill time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  validTill,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func NewExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
