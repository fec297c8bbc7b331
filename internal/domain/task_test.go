package domain

import "testing"

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		UserID:    "USER#42",
		TaskID:    "TASK#7",
		Title:     "File quarterly report",
		Status:    TaskStatusTodo,
		DueMarker: "2024-03-11",
	}

	if err := validTask.Validate(); err != nil {
		t.Fatalf("Expected no error for valid task, got %v", err)
	}

	noOwner := validTask
	noOwner.UserID = ""
	if err := noOwner.Validate(); err != ErrEmptyTaskUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskUserID, err)
	}

	noID := validTask
	noID.TaskID = ""
	if err := noID.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	badStatus := validTask
	badStatus.Status = "ARCHIVED"
	if err := badStatus.Validate(); err != ErrInvalidStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidStatus, err)
	}
}

func TestTaskIsCompleted(t *testing.T) {
	task := Task{UserID: "USER#42", TaskID: "TASK#7", Status: TaskStatusInProgress}
	if task.IsCompleted() {
		t.Error("IN_PROGRESS task should not be completed")
	}

	task.Status = TaskStatusCompleted
	if !task.IsCompleted() {
		t.Error("COMPLETED task should be completed")
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, status := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted} {
		if !status.IsValid() {
			t.Errorf("Expected status %q to be valid", status)
		}
	}

	if TaskStatus("DONE").IsValid() {
		t.Error("Expected unknown status to be invalid")
	}
}
