package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
)

func TestCreateCategoryTrimsAndValidates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	user := newTestUser(t, db, "a@b.com")
	ctx := context.Background()

	cat, err := svc.Create(ctx, user.ID, "  Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", cat.Name)

	_, err = svc.Create(ctx, user.ID, "   ")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDuplicateCategoryPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice.ID, "Work")
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	// A different user may reuse the name.
	_, err = svc.Create(ctx, bob.ID, "Work")
	assert.NoError(t, err)
}

func TestListCategoriesOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	user := newTestUser(t, db, "a@b.com")
	ctx := context.Background()

	for _, name := range []string{"Work", "Errands", "Health"} {
		_, err := svc.Create(ctx, user.ID, name)
		require.NoError(t, err)
	}

	categories, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"Errands", "Health", "Work"}, names)
}

func TestDeleteCategoryKeepsTasks(t *testing.T) {
	db := newTestDB(t)
	catSvc := NewCategoryService(repository.NewCategoryRepository(db))
	taskSvc := NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
	user := newTestUser(t, db, "a@b.com")
	ctx := context.Background()

	cat, err := catSvc.Create(ctx, user.ID, "Work")
	require.NoError(t, err)

	task, err := taskSvc.Create(ctx, user.ID, TaskInput{Title: "Report", CategoryID: cat.ID})
	require.NoError(t, err)

	require.NoError(t, catSvc.Delete(ctx, user.ID, cat.ID))

	// The task survives with its category reference cleared and the rest intact.
	got, err := taskSvc.Get(ctx, user.ID, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Equal(t, "Report", got.Title)
	assert.False(t, got.IsDone)

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Where("id = ?", cat.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCategoryCrossUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	alice := newTestUser(t, db, "alice@example.com")
	bob := newTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	cat, err := svc.Create(ctx, alice.ID, "Work")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, cat.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, alice.ID, cat.ID+100), ErrNotFound)

	// Alice's category is untouched.
	_, err = svc.repo.FindByID(ctx, alice.ID, cat.ID)
	assert.NoError(t, err)
}
