// Package client contains the HTTP collaborators of the pipeline: the
// notification microservice (record creation) and the task microservice
// (notification-sent flag updates).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/taskmgmt/notify-api/internal/platform/logger"
)

// maxErrorBodyBytes caps how much of an error response body is read for
// diagnostics.
const maxErrorBodyBytes = 64 * 1024

// ServiceErrorEntry is one entry of the structured error body both
// microservices return: {"errors": [{"key": ..., "error": ...}]}.
type ServiceErrorEntry struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// ServiceError describes a non-2xx response from a microservice, carrying
// the parsed error entries when the body was structured and the raw body
// otherwise.
type ServiceError struct {
	Service string
	Status  int
	Entries []ServiceErrorEntry
	RawBody string
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if len(e.Entries) > 0 {
		return fmt.Sprintf("%s service returned status %d with %d error entries", e.Service, e.Status, len(e.Entries))
	}
	return fmt.Sprintf("%s service returned status %d", e.Service, e.Status)
}

// NotificationClient creates notification records in the notification
// microservice.
type NotificationClient struct {
	url        string
	httpClient *http.Client
}

// NewNotificationClient creates a client for the notification microservice
// endpoint. A nil httpClient falls back to http.DefaultClient; no extra
// deadline is imposed beyond the transport's own.
func NewNotificationClient(url string, httpClient *http.Client) *NotificationClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &NotificationClient{
		url:        url,
		httpClient: httpClient,
	}
}

// createNotificationRequest is the POST body of the record-creation call.
type createNotificationRequest struct {
	UserID string `json:"userId"`
	TaskID string `json:"taskId"`
}

// errorResponseBody is the error shape of the notification microservice.
type errorResponseBody struct {
	Errors []ServiceErrorEntry `json:"errors"`
}

// Create records that a notification was issued for the (user, task) pair.
// Any 2xx response is success. A 409 means a record for the pair already
// exists and is treated as success, which keeps re-dispatch after a failed
// flag update from growing the record set. Other non-2xx responses return a
// *ServiceError after logging the structured error entries (or the raw body
// when the body is not structured).
func (c *NotificationClient) Create(ctx context.Context, userID, taskID string) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(createNotificationRequest{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusConflict {
		log.Info("notification record already exists",
			"user_id", userID,
			"task_id", taskID)
		return nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if readErr != nil {
		return fmt.Errorf("notification service returned status %d and reading the body failed: %w",
			resp.StatusCode, readErr)
	}

	svcErr := &ServiceError{
		Service: "notification",
		Status:  resp.StatusCode,
	}

	var parsed errorResponseBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		svcErr.Entries = parsed.Errors
		for _, entry := range parsed.Errors {
			log.Error("notification service rejected record creation",
				"user_id", userID,
				"task_id", taskID,
				"error_key", entry.Key,
				"error_message", entry.Error)
		}
	} else {
		svcErr.RawBody = string(body)
		log.Error("notification service rejected record creation",
			"user_id", userID,
			"task_id", taskID,
			"status", resp.StatusCode,
			"body", svcErr.RawBody)
	}

	return svcErr
}
