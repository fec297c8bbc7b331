// Package pipeline implements the notification dispatch pipeline: selecting
// tasks that are about to come due, resolving their owners, fanning out the
// per-task side effects (email, notification record, task flag), and
// aggregating one invocation-level outcome.
//
// Processing is sequential and isolation is per task: one task's failure is
// logged and recorded in its result, and never aborts the rest of the batch.
// Only a failure of the selection query itself fails the invocation.
package pipeline
