package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleStatsPage(c echo.Context) error {
	userID, _ := currentUserID(c)
	overview, err := s.stats.Overview(c.Request().Context(), userID, time.Now().UTC())
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "stats/index.html", echo.Map{
		"Title":    "Stats",
		"Overview": overview,
	})
}
