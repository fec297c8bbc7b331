package store

import (
	"context"

	"github.com/taskmgmt/notify-api/internal/domain"
)

// TaskReader defines the read-side interface for task selection.
type TaskReader interface {
	// ListDueForNotification returns every task whose due marker equals the
	// given key and which has not yet been notified about and is not
	// completed. The due-marker equality is the indexed lookup; the status
	// and notification-sent conditions are safety filters applied on top.
	//
	// An empty result is a normal outcome and returns (nil, nil); an error
	// is returned only when the query itself fails. Result order is
	// whatever the index yields and must be treated as unspecified.
	ListDueForNotification(ctx context.Context, dueMarker string) ([]domain.Task, error)
}
