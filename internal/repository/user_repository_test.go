package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := NewDB(dsn)
	require.NoError(t, err)
	return db
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := &model.User{Email: "alice@example.com", PasswordHash: "x"}
	bob := &model.User{Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	for _, userID := range []uint{alice.ID, bob.ID} {
		cat := &model.Category{UserID: userID, Name: "Work"}
		require.NoError(t, db.Create(cat).Error)
		require.NoError(t, db.Create(&model.Task{UserID: userID, Title: "Task", CategoryID: &cat.ID}).Error)
		require.NoError(t, db.Create(&model.Task{UserID: userID, Title: "Loose task"}).Error)
	}

	require.NoError(t, repo.Delete(ctx, alice.ID))

	var users, categories, tasks int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Task{}).Count(&tasks).Error)

	// Only Bob's data is left.
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), categories)
	assert.Equal(t, int64(2), tasks)

	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), gorm.ErrRecordNotFound)
}

func TestFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Email: "a@b.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	got, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.FindByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
