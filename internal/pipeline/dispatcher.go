package pipeline

import (
	"context"
	"errors"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/email"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
)

// Step-skip reasons for missing configuration. These end up in StepErrors
// so a degraded result is distinguishable from a clean one.
var (
	errSMTPNotConfigured         = errors.New("smtp is not configured")
	errNotificationNotConfigured = errors.New("notification service is not configured")
	errTaskServiceNotConfigured  = errors.New("task service is not configured")
)

// RecordCreator creates a notification record for a (user, task) pair.
type RecordCreator interface {
	Create(ctx context.Context, userID, taskID string) error
}

// FlagUpdater marks a task as notified in the task service.
type FlagUpdater interface {
	MarkNotificationSent(ctx context.Context, userID, taskID string) error
}

// Dispatcher performs the side effects for one resolved (task, user) pair:
// email delivery, notification-record creation, and the notification-sent
// flag update. The three steps are independent failure domains, attempted
// in that order; a failure in one never prevents attempting the others, and
// nothing propagates past Dispatch.
//
// A nil sender, records, or flags collaborator means the corresponding step
// is not configured; the step is skipped with a logged error. The cross-
// service ordering (record before flag) keeps a failed flag update
// recoverable: the next invocation re-selects the task and record creation
// tolerates the duplicate.
type Dispatcher struct {
	mode    domain.ReminderMode
	sender  email.Sender
	records RecordCreator
	flags   FlagUpdater
}

// NewDispatcher creates a Dispatcher. Any collaborator may be nil when the
// deployment leaves that step unconfigured.
func NewDispatcher(
	mode domain.ReminderMode,
	sender email.Sender,
	records RecordCreator,
	flags FlagUpdater,
) *Dispatcher {
	return &Dispatcher{
		mode:    mode,
		sender:  sender,
		records: records,
		flags:   flags,
	}
}

// Dispatch runs the three steps for the pair and returns the per-task
// result. It never returns an error; failures are logged with identity
// context and recorded in the result's StepErrors.
func (d *Dispatcher) Dispatch(ctx context.Context, task *domain.Task, user *domain.User) TaskResult {
	log := logger.FromContext(ctx)

	result := TaskResult{
		UserID: task.UserID,
		TaskID: task.TaskID,
		Status: StatusNotified,
	}

	// Step 1: email delivery, only for users that opted in and have an
	// address on file. Not wanting email is a normal outcome, not an error.
	if !user.WantsEmail() {
		log.Debug("email delivery not applicable",
			"user_id", task.UserID,
			"task_id", task.TaskID,
			"email_enabled", user.Preferences.Email,
			"has_address", user.Email != "")
	} else if d.sender == nil {
		d.recordStepError(ctx, &result, StepEmail, errSMTPNotConfigured)
	} else {
		msg := email.BuildReminder(d.mode, task, user.Email)
		if err := d.sender.Send(ctx, msg); err != nil {
			d.recordStepError(ctx, &result, StepEmail, err)
		} else {
			log.Info("reminder email sent",
				"user_id", task.UserID,
				"task_id", task.TaskID)
		}
	}

	// Step 2: notification-record creation.
	if d.records == nil {
		d.recordStepError(ctx, &result, StepRecord, errNotificationNotConfigured)
	} else if err := d.records.Create(ctx, task.UserID, task.TaskID); err != nil {
		d.recordStepError(ctx, &result, StepRecord, err)
	}

	// Step 3: flip the notification-sent flag. Attempted even when step 2
	// failed, so a flaky notification service cannot cause reminder storms.
	if d.flags == nil {
		d.recordStepError(ctx, &result, StepFlag, errTaskServiceNotConfigured)
	} else if err := d.flags.MarkNotificationSent(ctx, task.UserID, task.TaskID); err != nil {
		d.recordStepError(ctx, &result, StepFlag, err)
	}

	if len(result.StepErrors) > 0 {
		result.Status = StatusDegraded
	}

	return result
}

func (d *Dispatcher) recordStepError(ctx context.Context, result *TaskResult, step Step, err error) {
	logger.FromContext(ctx).Error("notification step failed",
		"user_id", result.UserID,
		"task_id", result.TaskID,
		"step", string(step),
		"error", err)

	result.StepErrors = append(result.StepErrors, StepError{Step: step, Err: err})
}
