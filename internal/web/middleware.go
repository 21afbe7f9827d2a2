package web

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// requireLogin redirects anonymous requests to the login page, preserving
// the originally requested path for the post-login redirect.
func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := currentUserID(c); !ok {
			return c.Redirect(http.StatusSeeOther, "/auth/login?next="+url.QueryEscape(c.Request().RequestURI))
		}
		return next(c)
	}
}

// safeNext keeps post-login redirects on this site. Anything that is not
// a local absolute path falls back to /tasks.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return "/tasks"
	}
	return next
}

// safeNextFromReferer reduces a Referer URL to a local path.
func safeNextFromReferer(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return "/tasks"
	}
	next := u.Path
	if u.RawQuery != "" {
		next += "?" + u.RawQuery
	}
	return safeNext(next)
}
