package domain

import "errors"

// Common task validation errors
var (
	ErrEmptyTaskUserID = errors.New("task owner user ID cannot be empty")
	ErrEmptyTaskID     = errors.New("task ID cannot be empty")
	ErrInvalidStatus   = errors.New("invalid task status")
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Task status values, as stored by the upstream task service.
// COMPLETED is terminal; completed tasks are never selected for reminders.
const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a user's task as the pipeline sees it. The record is
// owned by the upstream task service; the pipeline only reads it and flips
// NotificationSent through the task microservice, identified by the
// (UserID, TaskID) pair.
type Task struct {
	UserID           string     `json:"user_id"`
	TaskID           string     `json:"task_id"`
	Title            string     `json:"title"`
	Status           TaskStatus `json:"status"`
	NotificationSent bool       `json:"notification_sent"`
	DueMarker        string     `json:"due_marker"`
}

// IsCompleted reports whether the task is in its terminal state.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// Validate checks if the Task has valid identity and status.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.UserID == "" {
		return ErrEmptyTaskUserID
	}

	if t.TaskID == "" {
		return ErrEmptyTaskID
	}

	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}
