package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgmt/notify-api/internal/domain"
)

func TestSelectorDailyMarker(t *testing.T) {
	reader := &MockTaskReader{
		ListFn: func(ctx context.Context, dueMarker string) ([]domain.Task, error) {
			return []domain.Task{{
				UserID:    "USER#42",
				TaskID:    "TASK#7",
				Title:     "File quarterly report",
				Status:    domain.TaskStatusTodo,
				DueMarker: dueMarker,
			}}, nil
		},
	}
	selector := NewSelector(reader, domain.ReminderModeDaily)

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	tasks, marker, err := selector.Select(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", marker)
	assert.Equal(t, []string{"2024-03-11"}, reader.Markers)
	require.Len(t, tasks, 1)
	assert.Equal(t, "TASK#7", tasks[0].TaskID)
}

func TestSelectorHourlyMarker(t *testing.T) {
	reader := &MockTaskReader{}
	selector := NewSelector(reader, domain.ReminderModeHourly)

	now := time.Date(2024, 3, 10, 14, 42, 19, 0, time.UTC)
	_, marker, err := selector.Select(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T14:00Z", marker)
	assert.Equal(t, []string{"2024-03-10T14:00Z"}, reader.Markers)
}

func TestSelectorEmptyBatchIsNotAnError(t *testing.T) {
	reader := &MockTaskReader{}
	selector := NewSelector(reader, domain.ReminderModeDaily)

	tasks, _, err := selector.Select(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSelectorQueryFailure(t *testing.T) {
	reader := &MockTaskReader{
		ListFn: func(ctx context.Context, dueMarker string) ([]domain.Task, error) {
			return nil, errors.New("store unreachable")
		},
	}
	selector := NewSelector(reader, domain.ReminderModeDaily)

	tasks, _, err := selector.Select(context.Background(), time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "due-task selection failed")
	assert.Nil(t, tasks)
}
