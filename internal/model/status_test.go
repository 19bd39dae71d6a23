package model

import "testing"

func TestTaskStatus_String(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{TaskStatusPending, "Pending"},
		{TaskStatusStarting, "Starting"},
		{TaskStatusRunning, "Running"},
		{TaskStatusStopping, "Stopping"},
		{TaskStatusStopped, "Stopped"},
		{TaskStatusCompleted, "Completed"},
		{TaskStatusError, "Error"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("String() = %s, expected %s", test.status.String(), test.expected)
		}
	}
}

func TestTaskStatus_IsActive(t *testing.T) {
	active := []TaskStatus{TaskStatusStarting, TaskStatusRunning, TaskStatusStopping}
	inactive := []TaskStatus{TaskStatusPending, TaskStatusStopped, TaskStatusCompleted, TaskStatusError}

	for _, status := range active {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
	}

	for _, status := range inactive {
		if status.IsActive() {
			t.Errorf("Expected %s to not be active", status)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	finished := []TaskStatus{TaskStatusCompleted, TaskStatusStopped, TaskStatusError}
	unfinished := []TaskStatus{TaskStatusPending, TaskStatusStarting, TaskStatusRunning, TaskStatusStopping}

	for _, status := range finished {
		if !status.IsFinished() {
			t.Errorf("Expected %s to be finished", status)
		}
	}

	for _, status := range unfinished {
		if status.IsFinished() {
			t.Errorf("Expected %s to not be finished", status)
		}
	}
}
