package web

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/config"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
)

const csrfContextKey = "csrf"

// Server wires the HTTP surface around the services.
type Server struct {
	echo       *echo.Echo
	cfg        *config.Config
	auth       *service.AuthService
	categories *service.CategoryService
	tasks      *service.TaskService
	stats      *service.StatsService
}

func NewServer(cfg *config.Config, renderer *Renderer, auth *service.AuthService, categories *service.CategoryService, tasks *service.TaskService, stats *service.StatsService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SecretKey))))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:csrf",
		ContextKey:     csrfContextKey,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: sessionSameSite,
	}))

	s := &Server{
		echo:       e,
		cfg:        cfg,
		auth:       auth,
		categories: categories,
		tasks:      tasks,
		stats:      stats,
	}

	e.GET("/", s.handleIndex)

	authGroup := e.Group("/auth")
	authGroup.GET("/register", s.handleRegisterPage)
	authGroup.POST("/register", s.handleRegister)
	authGroup.GET("/login", s.handleLoginPage)
	authGroup.POST("/login", s.handleLogin)
	authGroup.GET("/logout", s.handleLogout, requireLogin)

	app := e.Group("", requireLogin)
	app.GET("/categories", s.handleCategoriesPage)
	app.POST("/categories", s.handleCreateCategory)
	app.POST("/categories/:id/delete", s.handleDeleteCategory)
	app.GET("/tasks", s.handleTasksPage)
	app.POST("/tasks/create", s.handleCreateTask)
	app.GET("/tasks/:id/edit", s.handleEditTaskPage)
	app.POST("/tasks/:id/edit", s.handleEditTask)
	app.POST("/tasks/:id/toggle", s.handleToggleTask)
	app.POST("/tasks/:id/delete", s.handleDeleteTask)
	app.GET("/stats", s.handleStatsPage)

	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleIndex(c echo.Context) error {
	if _, ok := currentUserID(c); ok {
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}

// render injects the cross-page view data before executing a template.
func (s *Server) render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["CSRF"], _ = c.Get(csrfContextKey).(string)
	_, authed := currentUserID(c)
	data["Authenticated"] = authed
	data["Flashes"] = takeFlashes(c)
	return c.Render(code, name, data)
}
