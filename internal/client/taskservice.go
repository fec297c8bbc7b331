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

// serviceKeyHeader carries the service-to-service API key on task
// microservice calls.
const serviceKeyHeader = "x-service-key"

// updateTaskMutation flips the NotificationSent flag for a (user, task)
// pair. The identity fields mirror the task service schema.
const updateTaskMutation = `
mutation UpdateTaskNotification($userId: String!, $taskId: String!) {
  updateTask(input: { UserId: $userId, TaskId: $taskId, NotificationSent: true }) {
    success
    errors {
      key
      error
    }
  }
}`

// TaskClient updates tasks through the task microservice GraphQL endpoint.
type TaskClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewTaskClient creates a client for the task microservice GraphQL
// endpoint. A nil httpClient falls back to http.DefaultClient.
func NewTaskClient(url, apiKey string, httpClient *http.Client) *TaskClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TaskClient{
		url:        url,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// graphqlRequest is the generic GraphQL-over-HTTP request envelope.
type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// updateTaskResponse is the response envelope of the updateTask mutation.
type updateTaskResponse struct {
	Data struct {
		UpdateTask struct {
			Success bool                `json:"success"`
			Errors  []ServiceErrorEntry `json:"errors"`
		} `json:"updateTask"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// MarkNotificationSent sets notificationSent = true on the task identified
// by the (user, task) pair. The flag is monotonic: the mutation only ever
// moves it false to true, so repeating the call is harmless.
func (c *TaskClient) MarkNotificationSent(ctx context.Context, userID, taskID string) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(graphqlRequest{
		Query: updateTaskMutation,
		Variables: map[string]string{
			"userId": userID,
			"taskId": taskID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode task update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build task update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(serviceKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("task update request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read task update response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("task service rejected update",
			"user_id", userID,
			"task_id", taskID,
			"status", resp.StatusCode,
			"body", string(body))
		return &ServiceError{
			Service: "task",
			Status:  resp.StatusCode,
			RawBody: string(body),
		}
	}

	var parsed updateTaskResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to decode task update response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		return fmt.Errorf("task update mutation failed: %s", parsed.Errors[0].Message)
	}

	if !parsed.Data.UpdateTask.Success {
		for _, entry := range parsed.Data.UpdateTask.Errors {
			log.Error("task service reported update failure",
				"user_id", userID,
				"task_id", taskID,
				"error_key", entry.Key,
				"error_message", entry.Error)
		}
		return &ServiceError{
			Service: "task",
			Status:  resp.StatusCode,
			Entries: parsed.Data.UpdateTask.Errors,
		}
	}

	return nil
}
