package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
)

func (s *Server) handleCategoriesPage(c echo.Context) error {
	userID, _ := currentUserID(c)
	categories, err := s.categories.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "categories/index.html", echo.Map{
		"Title":      "Categories",
		"Categories": categories,
		"Name":       "",
		"Errors":     map[string]string{},
	})
}

func (s *Server) handleCreateCategory(c echo.Context) error {
	userID, _ := currentUserID(c)
	ctx := c.Request().Context()
	name := c.FormValue("name")

	_, err := s.categories.Create(ctx, userID, name)
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrDuplicateCategory):
		flash(c, "warning", "This category already exists.")
	case errors.As(err, &verr):
		categories, listErr := s.categories.List(ctx, userID)
		if listErr != nil {
			return listErr
		}
		return s.render(c, http.StatusOK, "categories/index.html", echo.Map{
			"Title":      "Categories",
			"Categories": categories,
			"Name":       name,
			"Errors":     verr.Fields,
		})
	case err != nil:
		return err
	default:
		flash(c, "success", "Category added.")
	}
	return c.Redirect(http.StatusSeeOther, "/categories")
}

func (s *Server) handleDeleteCategory(c echo.Context) error {
	userID, _ := currentUserID(c)
	categoryID, err := parseID(c.Param("id"))
	if err != nil {
		flash(c, "warning", "Category not found.")
		return c.Redirect(http.StatusSeeOther, "/categories")
	}

	err = s.categories.Delete(c.Request().Context(), userID, categoryID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		flash(c, "warning", "Category not found.")
	case err != nil:
		return err
	default:
		log.Printf("[info] category deleted id=%d user=%d", categoryID, userID)
		flash(c, "info", "Category deleted. Its tasks were kept without a category.")
	}
	return c.Redirect(http.StatusSeeOther, "/categories")
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
