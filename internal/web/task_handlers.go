package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/service"
)

// taskRow pairs a task with its resolved category name for the list view.
type taskRow struct {
	model.Task
	CategoryName string
}

func (s *Server) handleTasksPage(c echo.Context) error {
	show := c.QueryParam("show")
	if show == "" {
		show = service.FilterAll
	}
	return s.renderTasksPage(c, show, &TaskForm{Priority: "2", Errors: map[string]string{}}, http.StatusOK)
}

func (s *Server) renderTasksPage(c echo.Context, show string, form *TaskForm, code int) error {
	userID, _ := currentUserID(c)
	ctx := c.Request().Context()

	tasks, err := s.tasks.List(ctx, userID, show)
	if err != nil {
		return err
	}
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return err
	}

	catNames := make(map[uint]string, len(categories))
	for _, cat := range categories {
		catNames[cat.ID] = cat.Name
	}
	rows := make([]taskRow, 0, len(tasks))
	for _, task := range tasks {
		row := taskRow{Task: task}
		if task.CategoryID != nil {
			row.CategoryName = catNames[*task.CategoryID]
		}
		rows = append(rows, row)
	}

	return s.render(c, code, "tasks/index.html", echo.Map{
		"Title":      "Tasks",
		"Tasks":      rows,
		"Categories": categories,
		"Show":       show,
		"Form":       form,
	})
}

func (s *Server) handleCreateTask(c echo.Context) error {
	userID, _ := currentUserID(c)

	form := parseTaskForm(c)
	input, ok := form.Input()
	if !ok {
		return s.renderTasksPage(c, service.FilterAll, form, http.StatusOK)
	}

	task, err := s.tasks.Create(c.Request().Context(), userID, input)
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		form.absorb(verr)
		return s.renderTasksPage(c, service.FilterAll, form, http.StatusOK)
	case errors.Is(err, service.ErrNotFound):
		form.Errors["category_id"] = "unknown category"
		return s.renderTasksPage(c, service.FilterAll, form, http.StatusOK)
	case err != nil:
		return err
	}

	log.Printf("[info] task created id=%d user=%d", task.ID, userID)
	flash(c, "success", "Task created.")
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

func (s *Server) handleEditTaskPage(c echo.Context) error {
	userID, _ := currentUserID(c)
	taskID, err := parseID(c.Param("id"))
	if err != nil {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	task, err := s.tasks.Get(c.Request().Context(), userID, taskID)
	if errors.Is(err, service.ErrNotFound) {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	if err != nil {
		return err
	}

	form := taskFormFromModel(task.Title, task.Description, task.Deadline, task.Priority, task.CategoryID, task.IsDone)
	return s.renderEditPage(c, task, form, http.StatusOK)
}

func (s *Server) renderEditPage(c echo.Context, task *model.Task, form *TaskForm, code int) error {
	userID, _ := currentUserID(c)
	categories, err := s.categories.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return s.render(c, code, "tasks/edit.html", echo.Map{
		"Title":      "Edit task",
		"Task":       task,
		"Categories": categories,
		"Form":       form,
	})
}

func (s *Server) handleEditTask(c echo.Context) error {
	userID, _ := currentUserID(c)
	taskID, err := parseID(c.Param("id"))
	if err != nil {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	ctx := c.Request().Context()

	task, err := s.tasks.Get(ctx, userID, taskID)
	if errors.Is(err, service.ErrNotFound) {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}
	if err != nil {
		return err
	}

	form := parseTaskForm(c)
	input, ok := form.Input()
	if !ok {
		return s.renderEditPage(c, task, form, http.StatusOK)
	}

	_, err = s.tasks.Update(ctx, userID, taskID, input)
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		form.absorb(verr)
		return s.renderEditPage(c, task, form, http.StatusOK)
	case errors.Is(err, service.ErrNotFound):
		form.Errors["category_id"] = "unknown category"
		return s.renderEditPage(c, task, form, http.StatusOK)
	case err != nil:
		return err
	}

	log.Printf("[info] task updated id=%d user=%d", taskID, userID)
	flash(c, "success", "Task updated.")
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

func (s *Server) handleToggleTask(c echo.Context) error {
	userID, _ := currentUserID(c)
	taskID, err := parseID(c.Param("id"))
	if err != nil {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	_, err = s.tasks.Toggle(c.Request().Context(), userID, taskID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		flash(c, "warning", "Task not found.")
	case err != nil:
		return err
	default:
		flash(c, "info", "Task status changed.")
	}

	if ref := c.Request().Referer(); ref != "" {
		return c.Redirect(http.StatusSeeOther, safeNextFromReferer(ref))
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	userID, _ := currentUserID(c)
	taskID, err := parseID(c.Param("id"))
	if err != nil {
		flash(c, "warning", "Task not found.")
		return c.Redirect(http.StatusSeeOther, "/tasks")
	}

	err = s.tasks.Delete(c.Request().Context(), userID, taskID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		flash(c, "warning", "Task not found.")
	case err != nil:
		return err
	default:
		log.Printf("[info] task deleted id=%d user=%d", taskID, userID)
		flash(c, "info", "Task deleted.")
	}
	return c.Redirect(http.StatusSeeOther, "/tasks")
}
