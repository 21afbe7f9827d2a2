package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
)

func (s *Server) handleRegisterPage(c echo.Context) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	return s.render(c, http.StatusOK, "auth/register.html", echo.Map{
		"Title": "Register",
		"Form":  &RegisterForm{Errors: map[string]string{}},
	})
}

func (s *Server) handleRegister(c echo.Context) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	form := parseRegisterForm(c)
	if !form.Validate() {
		return s.render(c, http.StatusOK, "auth/register.html", echo.Map{"Title": "Register", "Form": form})
	}

	user, err := s.auth.Register(c.Request().Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		flash(c, "danger", "A user with this email already exists.")
		return s.render(c, http.StatusOK, "auth/register.html", echo.Map{"Title": "Register", "Form": form})
	case err != nil:
		log.Printf("register: %v", err)
		flash(c, "danger", "Could not create the account. Please try again.")
		return s.render(c, http.StatusOK, "auth/register.html", echo.Map{"Title": "Register", "Form": form})
	}

	if err := signIn(c, user.ID, false, s.cfg.SessionMaxAge()); err != nil {
		return err
	}
	log.Printf("[info] user registered id=%d", user.ID)
	flash(c, "success", "Account created!")
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

func (s *Server) handleLoginPage(c echo.Context) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	return s.render(c, http.StatusOK, "auth/login.html", echo.Map{
		"Title": "Login",
		"Form":  &LoginForm{Errors: map[string]string{}},
		"Next":  c.QueryParam("next"),
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	form := parseLoginForm(c)
	next := c.QueryParam("next")
	if !form.Validate() {
		return s.render(c, http.StatusOK, "auth/login.html", echo.Map{"Title": "Login", "Form": form, "Next": next})
	}

	user, err := s.auth.Authenticate(c.Request().Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		flash(c, "danger", "Invalid email or password.")
		return s.render(c, http.StatusOK, "auth/login.html", echo.Map{"Title": "Login", "Form": form, "Next": next})
	case err != nil:
		log.Printf("login: %v", err)
		flash(c, "danger", "Login failed. Please try again.")
		return s.render(c, http.StatusOK, "auth/login.html", echo.Map{"Title": "Login", "Form": form, "Next": next})
	}

	if err := signIn(c, user.ID, form.Remember, s.cfg.SessionMaxAge()); err != nil {
		return err
	}
	log.Printf("[info] user logged in id=%d", user.ID)
	flash(c, "success", "Welcome back!")
	return c.Redirect(http.StatusSeeOther, safeNext(next))
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := signOut(c); err != nil {
		return err
	}
	flash(c, "info", "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}
