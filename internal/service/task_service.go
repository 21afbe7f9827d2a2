package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
)

const (
	maxTaskTitle       = 200
	maxTaskDescription = 5000
)

// Task list filters.
const (
	FilterAll  = "all"
	FilterOpen = "open"
	FilterDone = "done"
)

// TaskInput carries the fields a user can set on a task. CategoryID 0
// means "no category".
type TaskInput struct {
	Title       string
	Description string
	Deadline    *time.Time
	Priority    int
	CategoryID  uint
	IsDone      bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
	now        func() time.Time
}

func NewTaskService(tasks *repository.TaskRepository, categories *repository.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, now: time.Now}
}

// setDone applies the completion transition. CompletedAt is set on the
// false→true edge, cleared on the true→false edge and left untouched when
// the done flag does not change, so re-saving a done task keeps its
// original completion time.
func setDone(task *model.Task, done bool, now time.Time) {
	switch {
	case done && !task.IsDone:
		task.CompletedAt = &now
	case !done && task.IsDone:
		task.CompletedAt = nil
	}
	task.IsDone = done
}

func (s *TaskService) validate(ctx context.Context, userID uint, input *TaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return invalidf("title", "title is required")
	}
	if utf8.RuneCountInString(input.Title) > maxTaskTitle {
		return invalidf("title", "title must be at most %d characters", maxTaskTitle)
	}
	if utf8.RuneCountInString(input.Description) > maxTaskDescription {
		return invalidf("description", "description must be at most %d characters", maxTaskDescription)
	}
	if input.Priority == 0 {
		input.Priority = model.PriorityMedium
	}
	if input.Priority < model.PriorityLow || input.Priority > model.PriorityHigh {
		return invalidf("priority", "priority must be 1, 2 or 3")
	}
	if input.CategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, userID, input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
	}
	return nil
}

func categoryRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func (s *TaskService) Create(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, userID, &input); err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:      userID,
		CategoryID:  categoryRef(input.CategoryID),
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Priority:    input.Priority,
	}
	setDone(task, input.IsDone, s.now())

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update replaces the task's user-editable fields. The completion
// transition compares old and new state, so setting an already-done task
// to done does not reset CompletedAt.
func (s *TaskService) Update(ctx context.Context, userID, taskID uint, input TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, userID, &input); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Deadline = input.Deadline
	task.Priority = input.Priority
	task.CategoryID = categoryRef(input.CategoryID)
	setDone(task, input.IsDone, s.now())

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the done flag.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	setDone(task, !task.IsDone, s.now())

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uint) error {
	err := s.tasks.Delete(ctx, userID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// List returns the user's tasks in display order. Unknown filters fall
// back to all.
func (s *TaskService) List(ctx context.Context, userID uint, filter string) ([]model.Task, error) {
	var done *bool
	switch filter {
	case FilterOpen:
		f := false
		done = &f
	case FilterDone:
		t := true
		done = &t
	}
	return s.tasks.ListByUser(ctx, userID, done)
}
