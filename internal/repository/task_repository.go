package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Delete removes a task for the given user. Returns gorm.ErrRecordNotFound
// when the task does not exist or belongs to someone else.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).Delete(&model.Task{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUser returns the user's tasks, optionally filtered by completion,
// in display order: open before done, high priority first, earliest
// deadline first with missing deadlines last, id as the final tie-break.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uint, done *bool) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if done != nil {
		q = q.Where("is_done = ?", *done)
	}
	var tasks []model.Task
	if err := q.Order("is_done ASC, priority DESC, deadline ASC NULLS LAST, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TaskRepository) CountDone(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND is_done = ?", userID, true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountDoneWithDeadlineBefore counts done tasks whose deadline is set and
// strictly before the cutoff.
func (r *TaskRepository) CountDoneWithDeadlineBefore(ctx context.Context, userID uint, cutoff time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND is_done = ? AND deadline IS NOT NULL AND deadline < ?", userID, true, cutoff).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
