package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common notification validation errors
var (
	ErrEmptyNotificationUserID = errors.New("notification user ID cannot be empty")
	ErrEmptyNotificationTaskID = errors.New("notification task ID cannot be empty")
)

// NotificationRecord represents the persisted fact that a notification was
// issued for a given (user, task) pair. Records are created through the
// notification microservice and never mutated or deleted by this pipeline.
type NotificationRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    string    `json:"task_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotificationRecord creates a NotificationRecord for the given pair.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewNotificationRecord(userID, taskID string) (*NotificationRecord, error) {
	record := &NotificationRecord{
		ID:        uuid.New(),
		UserID:    userID,
		TaskID:    taskID,
		CreatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the NotificationRecord has valid identity.
func (n *NotificationRecord) Validate() error {
	if n.UserID == "" {
		return ErrEmptyNotificationUserID
	}

	if n.TaskID == "" {
		return ErrEmptyNotificationTaskID
	}

	return nil
}
