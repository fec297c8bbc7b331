package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskmgmt/notify-api/internal/platform/logger"
)

// Orchestrator drives one invocation of the pipeline: a single selection
// query, then sequential resolve-and-dispatch per task. No state survives
// between invocations; recovery from any failure relies on the next
// scheduled run re-selecting whatever was not flagged as notified.
type Orchestrator struct {
	selector   *Selector
	resolver   *Resolver
	dispatcher *Dispatcher
}

// NewOrchestrator wires the pipeline components together.
func NewOrchestrator(selector *Selector, resolver *Resolver, dispatcher *Dispatcher) *Orchestrator {
	return &Orchestrator{
		selector:   selector,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// Run executes one invocation at the given instant and returns its report.
// A selection failure makes the invocation fail; every per-task failure is
// absorbed into that task's result and processing continues with the next
// task.
func (o *Orchestrator) Run(ctx context.Context, now time.Time) *Report {
	runID := uuid.New()
	log := logger.FromContext(ctx).With("run_id", runID.String())
	ctx = logger.WithLogger(ctx, log)

	report := &Report{
		RunID:     runID,
		StartedAt: now.UTC(),
	}

	tasks, dueMarker, err := o.selector.Select(ctx, now)
	report.DueMarker = dueMarker
	if err != nil {
		log.Error("invocation failed before any task was processed", "error", err)
		report.SelectionErr = err
		return report
	}

	for i := range tasks {
		task := &tasks[i]
		taskLog := log.With("user_id", task.UserID, "task_id", task.TaskID)
		taskCtx := logger.WithLogger(ctx, taskLog)

		taskLog.Info("processing task", "title", task.Title)

		user, found, err := o.resolver.Resolve(taskCtx, task.UserID)
		if err != nil {
			taskLog.Error("failed to resolve task owner", "error", err)
			report.Results = append(report.Results, TaskResult{
				UserID:     task.UserID,
				TaskID:     task.TaskID,
				Status:     StatusFailed,
				SkipReason: "owner lookup failed: " + err.Error(),
			})
			continue
		}
		if !found {
			taskLog.Warn("task owner not found, skipping task")
			report.Results = append(report.Results, TaskResult{
				UserID:     task.UserID,
				TaskID:     task.TaskID,
				Status:     StatusSkipped,
				SkipReason: "owner not found",
			})
			continue
		}

		result := o.dispatcher.Dispatch(taskCtx, task, user)
		report.Results = append(report.Results, result)
	}

	log.Info("invocation finished",
		"due_marker", report.DueMarker,
		"total", len(report.Results),
		"notified", report.CountByStatus(StatusNotified),
		"degraded", report.CountByStatus(StatusDegraded),
		"skipped", report.CountByStatus(StatusSkipped),
		"failed", report.CountByStatus(StatusFailed))

	return report
}
