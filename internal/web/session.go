package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName     = "taskflow_session"
	sessionUserKey  = "uid"
	sessionSameSite = http.SameSiteLaxMode
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string // success, info, warning, danger
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// currentUserID reads the signed-in user id from the session cookie.
func currentUserID(c echo.Context) (uint, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[sessionUserKey].(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// signIn stores the user id in the session. With remember set the cookie
// outlives the browser session for maxAge seconds; otherwise it expires
// with the browser.
func signIn(c echo.Context, userID uint, remember bool, maxAge int) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: sessionSameSite,
	}
	if remember {
		sess.Options.MaxAge = maxAge
	}
	sess.Values[sessionUserKey] = userID
	return sess.Save(c.Request(), c.Response())
}

func signOut(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, sessionUserKey)
	sess.Options = &sessions.Options{Path: "/", HttpOnly: true, MaxAge: -1}
	return sess.Save(c.Request(), c.Response())
}

// flash queues a message for the next rendered page.
func flash(c echo.Context, category, message string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(Flash{Category: category, Message: message})
	_ = sess.Save(c.Request(), c.Response())
}

// takeFlashes drains queued messages.
func takeFlashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
