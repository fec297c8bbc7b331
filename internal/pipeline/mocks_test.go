package pipeline

import (
	"context"
	"sync"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/email"
	"github.com/taskmgmt/notify-api/internal/store"
)

// MockTaskReader implements store.TaskReader for testing.
type MockTaskReader struct {
	ListFn func(ctx context.Context, dueMarker string) ([]domain.Task, error)

	// Call recording
	Markers []string
}

func (m *MockTaskReader) ListDueForNotification(ctx context.Context, dueMarker string) ([]domain.Task, error) {
	m.Markers = append(m.Markers, dueMarker)
	if m.ListFn != nil {
		return m.ListFn(ctx, dueMarker)
	}
	return nil, nil
}

// MockUserReader implements store.UserReader for testing.
// Users maps user IDs to records; missing IDs yield store.ErrUserNotFound.
type MockUserReader struct {
	GetByIDFn func(ctx context.Context, id string) (*domain.User, error)

	Users   map[string]*domain.User
	Lookups []string
}

func NewMockUserReader() *MockUserReader {
	return &MockUserReader{Users: make(map[string]*domain.User)}
}

func (m *MockUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.Lookups = append(m.Lookups, id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

// MockSender implements email.Sender for testing.
type MockSender struct {
	SendFn func(ctx context.Context, msg email.Message) error

	mu   sync.Mutex
	Sent []email.Message
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, msg)
	m.mu.Unlock()
	if m.SendFn != nil {
		return m.SendFn(ctx, msg)
	}
	return nil
}

// pairCall records one (userID, taskID) client call.
type pairCall struct {
	UserID string
	TaskID string
}

// MockRecordCreator implements RecordCreator for testing.
type MockRecordCreator struct {
	CreateFn func(ctx context.Context, userID, taskID string) error

	Calls []pairCall
}

func (m *MockRecordCreator) Create(ctx context.Context, userID, taskID string) error {
	m.Calls = append(m.Calls, pairCall{UserID: userID, TaskID: taskID})
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, taskID)
	}
	return nil
}

// MockFlagUpdater implements FlagUpdater for testing.
type MockFlagUpdater struct {
	MarkFn func(ctx context.Context, userID, taskID string) error

	Calls []pairCall
}

func (m *MockFlagUpdater) MarkNotificationSent(ctx context.Context, userID, taskID string) error {
	m.Calls = append(m.Calls, pairCall{UserID: userID, TaskID: taskID})
	if m.MarkFn != nil {
		return m.MarkFn(ctx, userID, taskID)
	}
	return nil
}
