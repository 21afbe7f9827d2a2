package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
)

const maxCategoryName = 100

// CategoryService manages a user's categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create inserts a category for the user. The (user, name) pair is unique;
// both the common case and a concurrent-insert race report
// ErrDuplicateCategory via the translated constraint error.
func (s *CategoryService) Create(ctx context.Context, userID uint, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxCategoryName {
		return nil, invalidf("name", "name must be at most %d characters", maxCategoryName)
	}

	category := &model.Category{UserID: userID, Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID uint) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes the category after detaching the user's tasks from it.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint) error {
	err := s.repo.DeleteWithReassign(ctx, userID, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
