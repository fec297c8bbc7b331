package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
	"github.com/taskmgmt/notify-api/internal/store"
)

// Selector finds the tasks eligible for notification at a given instant.
type Selector struct {
	tasks store.TaskReader
	mode  domain.ReminderMode
}

// NewSelector creates a Selector over the given task reader.
func NewSelector(tasks store.TaskReader, mode domain.ReminderMode) *Selector {
	return &Selector{
		tasks: tasks,
		mode:  mode,
	}
}

// Select computes the due marker for the invocation instant and returns the
// matching eligible tasks along with the marker used. An empty batch is a
// normal outcome; an error means the query itself failed and the invocation
// cannot proceed.
func (s *Selector) Select(ctx context.Context, now time.Time) ([]domain.Task, string, error) {
	log := logger.FromContext(ctx)

	dueMarker := domain.DueMarker(now, s.mode)

	tasks, err := s.tasks.ListDueForNotification(ctx, dueMarker)
	if err != nil {
		return nil, dueMarker, fmt.Errorf("due-task selection failed for marker %s: %w", dueMarker, err)
	}

	log.Info("selected due tasks",
		"due_marker", dueMarker,
		"mode", string(s.mode),
		"count", len(tasks))

	return tasks, dueMarker, nil
}
