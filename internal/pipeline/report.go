package pipeline

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Invocation outcome messages. The phrasing is part of the scheduler
// contract and is kept stable.
const (
	messageCompleted = "Notifications processed successfully!"
	messageFailed    = "Error processing notifications!"
)

// Step identifies one of the dispatcher's independent side effects.
type Step string

const (
	StepEmail  Step = "email"
	StepRecord Step = "notification_record"
	StepFlag   Step = "task_flag"
)

// ResultStatus classifies the outcome of processing one task.
type ResultStatus string

const (
	// StatusNotified means every applicable step succeeded.
	StatusNotified ResultStatus = "notified"

	// StatusSkipped means no side effects were attempted, e.g. because the
	// owning user was not found.
	StatusSkipped ResultStatus = "skipped"

	// StatusDegraded means dispatch ran but at least one step failed or was
	// skipped for missing configuration. Remaining steps were still
	// attempted; recovery happens on a later invocation if the flag update
	// was among the casualties.
	StatusDegraded ResultStatus = "degraded"

	// StatusFailed means the task could not be dispatched at all, e.g. the
	// owner lookup failed with a real error.
	StatusFailed ResultStatus = "failed"
)

// StepError records one failed or config-skipped step with enough identity
// context for manual replay.
type StepError struct {
	Step Step
	Err  error
}

// TaskResult is the per-task outcome the orchestrator collects instead of
// only writing to the log. Tests and operators get an inspectable record of
// what happened to each task.
type TaskResult struct {
	UserID     string
	TaskID     string
	Status     ResultStatus
	SkipReason string
	StepErrors []StepError
}

// Report aggregates one invocation.
type Report struct {
	RunID     uuid.UUID
	DueMarker string
	StartedAt time.Time
	Results   []TaskResult

	// SelectionErr is set only when the due-task query itself failed; it is
	// the one error that fails the whole invocation.
	SelectionErr error
}

// Completed reports whether selection succeeded. Individual task failures
// do not change this; that asymmetry is deliberate per-task isolation.
func (r *Report) Completed() bool {
	return r.SelectionErr == nil
}

// CountByStatus returns how many tasks ended in the given status.
func (r *Report) CountByStatus(status ResultStatus) int {
	n := 0
	for _, result := range r.Results {
		if result.Status == status {
			n++
		}
	}
	return n
}

// Outcome is the structured invocation result handed to the scheduler.
type Outcome struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
}

// Outcome maps the report to the binary invocation result: 200 when
// selection succeeded (regardless of per-task outcomes), 500 when it did
// not. Callers needing per-task success tracking must read the Results,
// not this code.
func (r *Report) Outcome() Outcome {
	if !r.Completed() {
		return Outcome{StatusCode: http.StatusInternalServerError, Message: messageFailed}
	}
	return Outcome{StatusCode: http.StatusOK, Message: messageCompleted}
}
