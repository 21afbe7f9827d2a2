package service

import (
	"context"
	"time"

	"github.com/AlinaTolchenitsyna/TaskFlow/internal/repository"
)

// DayCount is one point of the 7-day trailing series.
type DayCount struct {
	Label string // DD.MM
	Count int64
}

// Overview aggregates task counts for the stats page.
type Overview struct {
	Total int64
	Done  int64
	Open  int64
	Days  []DayCount
}

// StatsService builds aggregate views over a user's tasks.
type StatsService struct {
	tasks *repository.TaskRepository
}

func NewStatsService(tasks *repository.TaskRepository) *StatsService {
	return &StatsService{tasks: tasks}
}

// Overview returns totals plus a 7-day series, oldest day first and ending
// on today. Each point is the cumulative count of done tasks whose deadline
// falls on or before that day.
func (s *StatsService) Overview(ctx context.Context, userID uint, today time.Time) (*Overview, error) {
	total, err := s.tasks.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	done, err := s.tasks.CountDone(ctx, userID)
	if err != nil {
		return nil, err
	}

	ov := &Overview{Total: total, Done: done, Open: total - done}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for i := 6; i >= 0; i-- {
		d := day.AddDate(0, 0, -i)
		count, err := s.tasks.CountDoneWithDeadlineBefore(ctx, userID, d.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		ov.Days = append(ov.Days, DayCount{Label: d.Format("02.01"), Count: count})
	}
	return ov, nil
}
