// Package api contains the HTTP handlers of the trigger surface.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taskmgmt/notify-api/internal/api/shared"
	"github.com/taskmgmt/notify-api/internal/pipeline"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
)

// InvocationRunner runs one pipeline invocation at a given instant.
type InvocationRunner interface {
	Run(ctx context.Context, now time.Time) *pipeline.Report
}

// RunResponse is the body returned to the scheduler. Status and message
// form the binary health signal; the counts let downstream alerting detect
// degraded runs without changing the health code.
type RunResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RunID     string `json:"run_id,omitempty"`
	DueMarker string `json:"due_marker,omitempty"`
	Total     int    `json:"total"`
	Notified  int    `json:"notified"`
	Degraded  int    `json:"degraded"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// NotifyHandler handles notification pipeline trigger requests.
type NotifyHandler struct {
	runner InvocationRunner
	logger *slog.Logger
	now    func() time.Time
}

// NewNotifyHandler creates a NotifyHandler around the given runner.
func NewNotifyHandler(runner InvocationRunner, logger *slog.Logger) *NotifyHandler {
	return &NotifyHandler{
		runner: runner,
		logger: logger,
		now:    time.Now,
	}
}

// Run handles POST /api/notifications/run requests. The scheduler calls it
// once per period; the invocation runs synchronously and the structured
// outcome is returned when the batch finishes.
func (h *NotifyHandler) Run(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithLogger(r.Context(), h.logger)

	report := h.runner.Run(ctx, h.now())
	outcome := report.Outcome()

	resp := RunResponse{
		Status:    outcome.StatusCode,
		Message:   outcome.Message,
		DueMarker: report.DueMarker,
		Total:     len(report.Results),
		Notified:  report.CountByStatus(pipeline.StatusNotified),
		Degraded:  report.CountByStatus(pipeline.StatusDegraded),
		Skipped:   report.CountByStatus(pipeline.StatusSkipped),
		Failed:    report.CountByStatus(pipeline.StatusFailed),
	}
	if report.RunID != (uuid.UUID{}) {
		resp.RunID = report.RunID.String()
	}

	shared.RespondWithJSON(w, r, outcome.StatusCode, resp)
}
